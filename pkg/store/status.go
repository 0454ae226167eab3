package store

import (
	"errors"
	"strings"
	"time"

	"tableflip.dev/fip/pkg/source"
)

// Phase is the lifecycle position of the most recent fetch.
type Phase int

const (
	// PhaseIdle means no fetch has been started.
	PhaseIdle Phase = iota
	// PhaseLoading means the newest fetch has not settled.
	PhaseLoading
	// PhaseSuccess means the newest fetch committed a list.
	PhaseSuccess
	// PhaseError means the newest fetch failed; Message explains why.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// FetchStatus describes the newest fetch. Message is non-empty iff Phase is
// PhaseError.
type FetchStatus struct {
	Phase      Phase
	Message    string
	Generation uint64
	UpdatedAt  time.Time
}

// Loading reports whether the newest fetch is in flight.
func (s FetchStatus) Loading() bool { return s.Phase == PhaseLoading }

// Failed reports whether the newest fetch ended in an error.
func (s FetchStatus) Failed() bool { return s.Phase == PhaseError }

// Describe flattens any fetch failure into a message suitable for the status
// line. It never returns "" for a non-nil error.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		cerr *source.ConfigError
		herr *source.HTTPError
		ferr *source.FormatError
		terr *source.TransportError
	)
	var msg string
	switch {
	case errors.As(err, &cerr):
		msg = "Configuration error: " + cerr.Error()
	case errors.As(err, &herr):
		msg = "HTTP error: " + herr.Error()
	case errors.As(err, &ferr):
		msg = "Format error: " + ferr.Error()
	case errors.As(err, &terr):
		msg = "Network error: " + terr.Error()
	default:
		msg = err.Error()
	}
	if strings.TrimSpace(msg) == "" {
		return "unknown error"
	}
	return msg
}
