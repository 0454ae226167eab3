package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-retryablehttp"

	"tableflip.dev/fip/pkg/logging"
)

// DelimitedConfig locates a comma-separated resource.
type DelimitedConfig struct {
	// Location is an http(s) URL, a file:// URL or a local path.
	Location string
}

// Validate reports a missing location.
func (c DelimitedConfig) Validate() error {
	if strings.TrimSpace(c.Location) == "" {
		return &ConfigError{Missing: []string{"csv.location"}}
	}
	return nil
}

// LocalPath returns the filesystem path when Location is not a URL.
func (c DelimitedConfig) LocalPath() (string, bool) {
	loc := strings.TrimSpace(c.Location)
	if loc == "" {
		return "", false
	}
	if strings.HasPrefix(loc, "file://") {
		u, err := url.Parse(loc)
		if err != nil {
			return "", false
		}
		return filepath.FromSlash(u.Path), true
	}
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		return "", false
	}
	return loc, true
}

// Delimited reads a comma-separated resource whose first line names the
// fields.
type Delimited struct {
	cfg    DelimitedConfig
	client *retryablehttp.Client
}

// NewDelimited returns a Delimited fetcher. client may be nil when the
// location is a local file.
func NewDelimited(cfg DelimitedConfig, client *retryablehttp.Client) *Delimited {
	return &Delimited{cfg: cfg, client: client}
}

func (d *Delimited) String() string {
	return "csv " + d.cfg.Location
}

// Fetch loads the resource and parses it into header-keyed records.
func (d *Delimited) Fetch(ctx context.Context) (Payload, error) {
	if err := d.cfg.Validate(); err != nil {
		return Payload{}, err
	}
	raw, err := d.load(ctx)
	if err != nil {
		return Payload{}, err
	}
	recs, err := ParseDelimited(bytes.NewReader(raw))
	if err != nil {
		return Payload{}, err
	}
	logging.For("csv").WithField("records", len(recs)).Debug("records parsed")
	return Payload{Records: recs}, nil
}

func (d *Delimited) load(ctx context.Context) ([]byte, error) {
	if path, ok := d.cfg.LocalPath(); ok {
		if err := ctx.Err(); err != nil {
			return nil, &TransportError{Op: "read", URL: path, Err: err}
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, &TransportError{Op: "read", URL: path, Err: err}
		}
		return b, nil
	}
	if d.client == nil {
		return nil, &TransportError{Op: "GET", URL: d.cfg.Location, Err: errors.New("no HTTP client configured")}
	}
	resp, err := get(ctx, d.client, d.cfg.Location, d.cfg.Location)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.httpError()
	}
	return resp.Body, nil
}

// ParseDelimited decodes r as UTF-8 and parses comma-separated lines. The
// first line supplies the keys; every later line becomes one Record. Cells
// missing from a short line are left out of its record. Columns with a blank
// header are skipped, and a header named twice is a FormatError.
func ParseDelimited(r io.Reader) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &TransportError{Op: "read", URL: "body", Err: err}
	}
	text := decodeUTF8(raw)

	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, &FormatError{Reason: "header line", Err: err}
	}
	seen := make(map[string]bool, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if header[i] == "" {
			continue
		}
		if seen[header[i]] {
			return nil, &FormatError{Reason: fmt.Sprintf("duplicate header %q in column %d", header[i], i+1)}
		}
		seen[header[i]] = true
	}

	recs := []Record{}
	for {
		line, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("record %d", len(recs)+1), Err: err}
		}
		rec := make(Record, len(header))
		for i, key := range header {
			if i >= len(line) {
				break
			}
			if key == "" {
				continue
			}
			rec[key] = line[i]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func decodeUTF8(raw []byte) string {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "\uFFFD")
}
