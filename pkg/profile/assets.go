package profile

import (
	"path"
	"strings"
)

// DefaultBasePath is where the deck's static assets are served from.
const DefaultBasePath = "/fip"

// Assets resolves image references from a profile into servable paths.
type Assets struct {
	Base         string
	Participants string
	Flags        string
	Categories   string
}

// DefaultAssets mirrors the layout used by the stage display.
func DefaultAssets() Assets {
	return AssetsAt(DefaultBasePath)
}

// AssetsAt builds the standard layout under base.
func AssetsAt(base string) Assets {
	if strings.TrimSpace(base) == "" {
		base = DefaultBasePath
	}
	return Assets{
		Base:         base,
		Participants: "participants-w/",
		Flags:        "flags/",
		Categories:   "categories/",
	}
}

// PhotoURL returns the participant photo location or "" when unset.
func (a Assets) PhotoURL(p Profile) string {
	return a.join(a.Participants, p.Photo)
}

// FlagURL returns the flag artwork location or "" when unset.
func (a Assets) FlagURL(p Profile) string {
	return a.join(a.Flags, p.FlagImage)
}

// CategoryURL returns the category artwork location or "" when unset.
func (a Assets) CategoryURL(p Profile) string {
	return a.join(a.Categories, p.CategoryImage)
}

func (a Assets) join(dir, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.Contains(ref, "://") {
		return ref
	}
	base := a.Base
	// Absolute URLs keep their scheme; path.Join would collapse "//".
	if i := strings.Index(base, "://"); i >= 0 {
		scheme, rest := base[:i+3], base[i+3:]
		return scheme + path.Join(rest, dir, ref)
	}
	return path.Join(base, dir, ref)
}
