package templates

// Template is the closed set of visual styles a store can render with.
// Templates control presentation only.
type Template string

const (
	Minimal     Template = "minimal"
	Elegant     Template = "elegant"
	Modern      Template = "modern"
	Boutique    Template = "boutique"
	Vintage     Template = "vintage"
	Luxury      Template = "luxury"
	MinimalDark Template = "minimal-dark"
	Artisan     Template = "artisan"
)

// Default is what new stores get and what unknown values fall back to.
const Default = Minimal

// Style carries the presentation attributes the catalog renderer needs.
type Style struct {
	FontFamily string `json:"fontFamily"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Accent     string `json:"accent"`
	CardStyle  string `json:"cardStyle"`
}

// All lists every template in wizard display order.
func All() []Template {
	return []Template{Minimal, Elegant, Modern, Boutique, Vintage, Luxury, MinimalDark, Artisan}
}

// Parse reports whether s names a known template.
func Parse(s string) (Template, bool) {
	t := Template(s)
	switch t {
	case Minimal, Elegant, Modern, Boutique, Vintage, Luxury, MinimalDark, Artisan:
		return t, true
	}
	return Default, false
}

// Resolve maps a template to its style. Unrecognized values render as
// minimal rather than blank.
func Resolve(t Template) Style {
	switch t {
	case Elegant:
		return Style{FontFamily: "serif", Background: "#faf7f2", Foreground: "#2b2b2b", Accent: "#b08d57", CardStyle: "bordered"}
	case Modern:
		return Style{FontFamily: "sans-serif", Background: "#ffffff", Foreground: "#111827", Accent: "#2563eb", CardStyle: "shadowed"}
	case Boutique:
		return Style{FontFamily: "sans-serif", Background: "#fdf2f8", Foreground: "#500724", Accent: "#db2777", CardStyle: "rounded"}
	case Vintage:
		return Style{FontFamily: "serif", Background: "#f5f0e6", Foreground: "#3f3121", Accent: "#8b5e34", CardStyle: "bordered"}
	case Luxury:
		return Style{FontFamily: "serif", Background: "#0f0f0f", Foreground: "#f5f5f4", Accent: "#d4af37", CardStyle: "shadowed"}
	case MinimalDark:
		return Style{FontFamily: "sans-serif", Background: "#18181b", Foreground: "#fafafa", Accent: "#a1a1aa", CardStyle: "flat"}
	case Artisan:
		return Style{FontFamily: "serif", Background: "#fffbeb", Foreground: "#451a03", Accent: "#b45309", CardStyle: "rounded"}
	case Minimal:
		fallthrough
	default:
		return Style{FontFamily: "sans-serif", Background: "#ffffff", Foreground: "#1f2937", Accent: "#6b7280", CardStyle: "flat"}
	}
}
