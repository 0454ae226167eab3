package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"tableflip.dev/fip/pkg/logging"
)

// DefaultSheetsEndpoint is the public Google Sheets API host.
const DefaultSheetsEndpoint = "https://sheets.googleapis.com"

// SheetConfig identifies the spreadsheet range to read.
type SheetConfig struct {
	ID     string
	Range  string
	APIKey string
	// Endpoint overrides DefaultSheetsEndpoint.
	Endpoint string
}

// Validate reports every missing required value at once.
func (c SheetConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ID) == "" {
		missing = append(missing, "sheet.id")
	}
	if strings.TrimSpace(c.Range) == "" {
		missing = append(missing, "sheet.range")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		missing = append(missing, "sheet.key")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func (c SheetConfig) endpoint() string {
	if e := strings.TrimRight(strings.TrimSpace(c.Endpoint), "/"); e != "" {
		return e
	}
	return DefaultSheetsEndpoint
}

// URL builds the values request. withKey controls whether the API key is
// included; display strings never carry it.
func (c SheetConfig) URL(withKey bool) string {
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.endpoint(), url.PathEscape(c.ID), url.PathEscape(c.Range))
	if withKey {
		u += "?" + url.Values{"key": {c.APIKey}}.Encode()
	}
	return u
}

// Sheets reads rows from the Google Sheets values API.
type Sheets struct {
	cfg    SheetConfig
	client *retryablehttp.Client
}

// NewSheets returns a Sheets fetcher. Configuration is checked on every
// Fetch so a misconfigured deck still reports through the store.
func NewSheets(cfg SheetConfig, client *retryablehttp.Client) *Sheets {
	return &Sheets{cfg: cfg, client: client}
}

func (s *Sheets) String() string {
	return fmt.Sprintf("sheets %s!%s", s.cfg.ID, s.cfg.Range)
}

// Fetch issues one request and returns the data rows with the header row
// removed.
func (s *Sheets) Fetch(ctx context.Context) (Payload, error) {
	if err := s.cfg.Validate(); err != nil {
		return Payload{}, err
	}
	log := logging.For("sheets")
	display := s.cfg.URL(false)
	log.WithField("url", display).Debug("fetching values")

	resp, err := get(ctx, s.client, s.cfg.URL(true), display)
	if err != nil {
		return Payload{}, err
	}
	if !resp.ok() {
		herr := resp.httpError()
		herr.Detail = gjson.GetBytes(resp.Body, "error.message").String()
		return Payload{}, herr
	}

	rows, err := parseValues(resp.Body)
	if err != nil {
		return Payload{}, err
	}
	log.WithField("rows", len(rows)).Debug("values parsed")
	return Payload{Rows: rows}, nil
}

// parseValues extracts the "values" matrix and drops the header row.
func parseValues(body []byte) ([][]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, &FormatError{Reason: "body is not valid JSON"}
	}
	values := gjson.GetBytes(body, "values")
	if !values.Exists() {
		return nil, &FormatError{Reason: `missing "values"`}
	}
	if !values.IsArray() {
		return nil, &FormatError{Reason: `"values" is not a list`}
	}

	all := values.Array()
	if len(all) <= 1 {
		return [][]string{}, nil
	}
	rows := make([][]string, 0, len(all)-1)
	for i, row := range all[1:] {
		if !row.IsArray() {
			return nil, &FormatError{Reason: fmt.Sprintf("row %d is not a list", i+1)}
		}
		cells := row.Array()
		out := make([]string, len(cells))
		for j, cell := range cells {
			if cell.Type == gjson.String {
				out[j] = cell.Str
			} else {
				out[j] = cell.Raw
			}
		}
		rows = append(rows, out)
	}
	return rows, nil
}
