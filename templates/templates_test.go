package templates

import "testing"

func TestParseKnownTemplates(t *testing.T) {
	for _, tpl := range All() {
		got, ok := Parse(string(tpl))
		if !ok || got != tpl {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, true)", tpl, got, ok, tpl)
		}
	}
}

func TestParseUnknownFallsBack(t *testing.T) {
	got, ok := Parse("neon-cyberpunk")
	if ok {
		t.Fatal("unknown template reported as known")
	}
	if got != Default {
		t.Fatalf("unknown template parsed to %q, want %q", got, Default)
	}
}

func TestResolveNeverBlank(t *testing.T) {
	for _, tpl := range All() {
		style := Resolve(tpl)
		if style.FontFamily == "" || style.Background == "" || style.Foreground == "" {
			t.Errorf("Resolve(%q) returned incomplete style: %+v", tpl, style)
		}
	}
}

func TestResolveUnknownGetsMinimalStyle(t *testing.T) {
	if Resolve(Template("whatever")) != Resolve(Minimal) {
		t.Fatal("unrecognized template must render with the minimal style")
	}
}
