package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleSheetPath = "/spreadsheets/d/1AbC-d_0xyz/edit#gid=0"

func gvizWrap(json string) string {
	return fmt.Sprintf("/*O_o*/\ngoogle.visualization.Query.setResponse(%s);", json)
}

func TestExtractSheetID(t *testing.T) {
	id, err := ExtractSheetID("https://docs.google.com" + sampleSheetPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1AbC-d_0xyz" {
		t.Fatalf("got id %q", id)
	}
}

func TestExtractSheetIDInvalid(t *testing.T) {
	_, err := ExtractSheetID("https://example.com/not-a-sheet")
	if !errors.Is(err, ErrInvalidSheetURL) {
		t.Fatalf("got %v, want ErrInvalidSheetURL", err)
	}
}

func testClient(srv *httptest.Server) *Client {
	return &Client{HTTP: srv.Client(), BaseURL: srv.URL}
}

func TestFetchProducts(t *testing.T) {
	body := gvizWrap(`{"table":{"rows":[
		{"c":[{"v":"Widget"},{"v":9.99},{"v":"A fine widget"},{"v":"https://img/widget.png"}]},
		{"c":[{"v":"Gadget"},{"v":"19.50"},null,null]},
		{"c":[{"v":""},{"v":""},{"v":""},{"v":""}]}
	]}}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	drafts, err := testClient(srv).FetchProducts(context.Background(), srv.URL+sampleSheetPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("got %d drafts, want 3", len(drafts))
	}

	if drafts[0].Name != "Widget" || drafts[0].Price != 9.99 || drafts[0].Description != "A fine widget" {
		t.Errorf("row 1 parsed wrong: %+v", drafts[0])
	}
	if drafts[1].Name != "Gadget" || drafts[1].Price != 19.5 {
		t.Errorf("row 2 parsed wrong: %+v", drafts[1])
	}

	// all-empty row falls back to placeholders
	empty := drafts[2]
	if empty.Name != "Untitled Product" {
		t.Errorf("empty name fallback = %q", empty.Name)
	}
	if empty.Price != 0.0 {
		t.Errorf("empty price fallback = %v", empty.Price)
	}
	if empty.Description != "" {
		t.Errorf("empty description fallback = %q", empty.Description)
	}
	if empty.Image != "/placeholder.svg" {
		t.Errorf("empty image fallback = %q", empty.Image)
	}
}

func TestFetchProductsParseFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>sign in required</html>")
	}))
	defer srv.Close()

	_, err := testClient(srv).FetchProducts(context.Background(), srv.URL+sampleSheetPath)
	if !errors.Is(err, ErrSheetParse) {
		t.Fatalf("got %v, want ErrSheetParse", err)
	}
}

func TestFetchProductsInvalidURL(t *testing.T) {
	c := NewClient()
	_, err := c.FetchProducts(context.Background(), "https://example.com/whatever")
	if !errors.Is(err, ErrInvalidSheetURL) {
		t.Fatalf("got %v, want ErrInvalidSheetURL", err)
	}
}
