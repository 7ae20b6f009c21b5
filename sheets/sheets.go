package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"shoplink/models"
	"shoplink/utils"
)

var (
	// ErrInvalidSheetURL means the URL carries no recognizable spreadsheet id.
	ErrInvalidSheetURL = errors.New("invalid Google Sheet URL")
	// ErrSheetParse means the response was not the expected gviz payload,
	// usually a sheet that is not shared publicly.
	ErrSheetParse = errors.New("failed to parse sheet data")
)

var (
	sheetIDPattern  = regexp.MustCompile(`spreadsheets/d/([a-zA-Z0-9-_]+)`)
	gvizBodyPattern = regexp.MustCompile(`(?s)google\.visualization\.Query\.setResponse\((.*)\);`)
)

const placeholderImage = "/placeholder.svg"

// ExtractSheetID pulls the spreadsheet id out of a share URL.
func ExtractSheetID(sheetURL string) (string, error) {
	m := sheetIDPattern.FindStringSubmatch(sheetURL)
	if m == nil {
		return "", ErrInvalidSheetURL
	}
	return m[1], nil
}

// Client fetches product rows from a publicly shared Google Sheet via the
// gviz endpoint. The zero value uses a default HTTP client.
type Client struct {
	HTTP    *http.Client
	BaseURL string // overridable for tests
}

func NewClient() *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: "https://docs.google.com",
	}
}

// gviz response shape: {"table":{"rows":[{"c":[{"v":...},...]}]}}
type gvizCell struct {
	V any `json:"v"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizResponse struct {
	Table struct {
		Rows []gvizRow `json:"rows"`
	} `json:"table"`
}

// FetchProducts reads one row per product, columns in fixed order
// {Name, Price, Description, Image URL}. Missing cells fall back to
// placeholder values; the read is idempotent and side-effect free.
func (c *Client) FetchProducts(ctx context.Context, sheetURL string) ([]models.ProductDraft, error) {
	sheetID, err := ExtractSheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:json", c.BaseURL, sheetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sheet fetch failed: %w", err)
	}

	return parseGviz(body)
}

func parseGviz(body []byte) ([]models.ProductDraft, error) {
	m := gvizBodyPattern.FindSubmatch(body)
	if m == nil {
		return nil, ErrSheetParse
	}

	var parsed gvizResponse
	if err := json.Unmarshal(m[1], &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSheetParse, err)
	}

	drafts := make([]models.ProductDraft, 0, len(parsed.Table.Rows))
	for _, row := range parsed.Table.Rows {
		drafts = append(drafts, models.ProductDraft{
			Name:        stringCell(cell(row.C, 0), "Untitled Product"),
			Price:       utils.ParsePrice(cell(row.C, 1)),
			Description: stringCell(cell(row.C, 2), ""),
			Image:       stringCell(cell(row.C, 3), placeholderImage),
		})
	}
	return drafts, nil
}

func cell(cells []*gvizCell, i int) any {
	if i >= len(cells) || cells[i] == nil {
		return nil
	}
	return cells[i].V
}

func stringCell(v any, fallback string) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}
