// Package timeutil parses the human-friendly durations accepted in config.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"ms":      time.Millisecond,
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
)

// ParseTimeout reads values such as "30s", "1m30s", "45 sec" or a bare
// number of seconds. Empty and "0" mean no timeout.
func ParseTimeout(input string) (time.Duration, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseInt(lower, 10, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("timeout must not be negative")
		}
		return time.Duration(secs) * time.Second, nil
	}

	remaining := lower
	total := time.Duration(0)
	for len(strings.TrimSpace(remaining)) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}
	return total, nil
}

// FormatTimeout renders d with h/m/s tokens, or "none" for zero.
func FormatTimeout(d time.Duration) string {
	if d <= 0 {
		return "none"
	}

	type unit struct {
		label string
		value time.Duration
	}
	units := []unit{
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return d.String()
	}
	return strings.Join(parts, "")
}
