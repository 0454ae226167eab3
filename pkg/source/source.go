// Package source fetches raw participant rows from one of the supported
// origins: the Google Sheets values API or a delimited text file.
package source

import (
	"context"
	"fmt"
	"strings"
)

// Record is one delimited-text line keyed by the header line.
type Record map[string]string

// Payload is the raw result of a fetch. Exactly one of Rows and Records is
// populated: Rows for positional sources (header already removed), Records
// for sources whose parser keys cells by header name.
type Payload struct {
	Rows    [][]string
	Records []Record
}

// Len reports how many data rows the payload carries.
func (p Payload) Len() int {
	if p.Records != nil {
		return len(p.Records)
	}
	return len(p.Rows)
}

// Fetcher produces a finite, ordered set of rows from an origin.
type Fetcher interface {
	Fetch(ctx context.Context) (Payload, error)
	// String describes the origin for logs and status lines; it never
	// includes secrets.
	String() string
}

// Kind selects a Fetcher implementation.
type Kind string

const (
	// KindSheets reads from the Google Sheets values API.
	KindSheets Kind = "sheets"
	// KindDelimited reads a comma-separated text resource.
	KindDelimited Kind = "csv"
)

// ParseKind accepts "sheets" or "csv" (also "text" and "delimited").
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "sheets", "sheet", "api":
		return KindSheets, nil
	case "csv", "text", "delimited":
		return KindDelimited, nil
	}
	return "", fmt.Errorf("source: unknown kind %q", raw)
}
