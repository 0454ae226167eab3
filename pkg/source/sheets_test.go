package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
)

func sheetsServer(t *testing.T, status int, body string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		if got, want := r.URL.Path, "/v4/spreadsheets/sheet-123/values/Participants!A1:J"; got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
		if got := r.URL.Query().Get("key"); got != "secret" {
			t.Errorf("key = %q, want %q", got, "secret")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func sheetsFor(t *testing.T, srv *httptest.Server) *Sheets {
	t.Helper()
	client, err := NewClient(HTTPConfig{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewSheets(SheetConfig{
		ID:       "sheet-123",
		Range:    "Participants!A1:J",
		APIKey:   "secret",
		Endpoint: srv.URL,
	}, client)
}

func TestSheetsFetchDropsHeader(t *testing.T) {
	srv := sheetsServer(t, http.StatusOK, `{
		"range": "Participants!A1:J3",
		"values": [
			["SLOT_SCHEDULE", "CATEGORY", "FIRST_AND_LAST_NAME"],
			["09:00", "Juniors", "Amina Yusuf"],
			["09:15", "Seniors", "Omar Haddad", "Omar", "Haddad"]
		]
	}`, nil)

	payload, err := sheetsFor(t, srv).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if payload.Records != nil {
		t.Fatalf("expected positional rows, got records")
	}
	if len(payload.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(payload.Rows))
	}
	if payload.Rows[0][2] != "Amina Yusuf" || payload.Rows[1][4] != "Haddad" {
		t.Fatalf("unexpected rows: %#v", payload.Rows)
	}
}

func TestSheetsFetchHeaderOnly(t *testing.T) {
	srv := sheetsServer(t, http.StatusOK, `{"values": [["SLOT_SCHEDULE"]]}`, nil)
	payload, err := sheetsFor(t, srv).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if payload.Len() != 0 {
		t.Fatalf("expected no rows, got %d", payload.Len())
	}
}

func TestSheetsFetchHTTPError(t *testing.T) {
	var hits int32
	srv := sheetsServer(t, http.StatusInternalServerError, `{"error": {"code": 500, "message": "backend unavailable"}}`, &hits)

	_, err := sheetsFor(t, srv).Fetch(context.Background())
	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if herr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d", herr.StatusCode)
	}
	if herr.Status != "500 Internal Server Error" {
		t.Fatalf("status text = %q", herr.Status)
	}
	if herr.Detail != "backend unavailable" {
		t.Fatalf("detail = %q", herr.Detail)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected exactly one request, got %d", n)
	}
}

func TestSheetsFetchFormatErrors(t *testing.T) {
	for name, body := range map[string]string{
		"not json":       `<html>oops</html>`,
		"missing values": `{"range": "A1:J"}`,
		"values object":  `{"values": {"a": 1}}`,
		"row not list":   `{"values": [["h"], "row"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := sheetsServer(t, http.StatusOK, body, nil)
			_, err := sheetsFor(t, srv).Fetch(context.Background())
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("expected FormatError, got %T: %v", err, err)
			}
		})
	}
}

func TestSheetsConfigErrorBeforeNetwork(t *testing.T) {
	var hits int32
	srv := sheetsServer(t, http.StatusOK, `{"values": []}`, &hits)
	client, err := NewClient(HTTPConfig{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	s := NewSheets(SheetConfig{ID: "sheet-123", Endpoint: srv.URL}, client)
	_, err = s.Fetch(context.Background())

	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
	if len(cerr.Missing) != 2 || cerr.Missing[0] != "sheet.range" || cerr.Missing[1] != "sheet.key" {
		t.Fatalf("unexpected missing list %v", cerr.Missing)
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestSheetsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	client, err := NewClient(HTTPConfig{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	s := NewSheets(SheetConfig{ID: "a", Range: "b", APIKey: "secret", Endpoint: endpoint}, client)
	_, err = s.Fetch(context.Background())

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if terr.URL != s.cfg.URL(false) {
		t.Fatalf("transport error leaked URL %q", terr.URL)
	}
	if strings.Contains(err.Error(), "secret") {
		t.Fatalf("transport error leaked key: %v", err)
	}
}

func TestSheetConfigURL(t *testing.T) {
	c := SheetConfig{ID: "abc", Range: "Sheet 1!A:J", APIKey: "k&y"}
	if got, want := c.URL(false), "https://sheets.googleapis.com/v4/spreadsheets/abc/values/Sheet%201%21A:J"; got != want {
		t.Fatalf("URL(false) = %q, want %q", got, want)
	}
	if got, want := c.URL(true), "https://sheets.googleapis.com/v4/spreadsheets/abc/values/Sheet%201%21A:J?key=k%26y"; got != want {
		t.Fatalf("URL(true) = %q, want %q", got, want)
	}
}

func TestRedactURL(t *testing.T) {
	got := redactURL("https://sheets.googleapis.com/v4/spreadsheets/a/values/b?key=secret")
	if got != "https://sheets.googleapis.com/v4/spreadsheets/a/values/b?key=REDACTED" {
		t.Fatalf("redactURL() = %q", got)
	}
}

func TestRedactError(t *testing.T) {
	err := errors.New(`GET http://127.0.0.1:1/v4/spreadsheets/a/values/b?key=secret giving up after 1 attempt(s): Get "http://127.0.0.1:1/v4/spreadsheets/a/values/b?key=secret": dial tcp: refused`)
	got, ok := redact(err).(string)
	if !ok {
		t.Fatalf("redact() returned %T", redact(err))
	}
	if strings.Contains(got, "secret") {
		t.Fatalf("redact() = %q", got)
	}
	if !strings.Contains(got, "?key=REDACTED") {
		t.Fatalf("redact() = %q, want masked key", got)
	}
}

func TestScrubErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := scrubError(&url.Error{Op: "Get", URL: "http://h/x?key=secret", Err: cause}, "http://h/x")
	if strings.Contains(err.Error(), "secret") {
		t.Fatalf("scrubError() = %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("scrubError() lost the cause: %v", err)
	}
}
