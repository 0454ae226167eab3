// Package profile defines the participant record shown on stage and the
// helpers that build it from raw spreadsheet rows.
package profile

import (
	"strings"
)

// Field names a profile column. The values double as the JSON keys and the
// header names accepted from delimited sources.
type Field string

const (
	// SlotSchedule is the time slot the participant recites in.
	SlotSchedule Field = "SLOT_SCHEDULE"
	// Category is the competition category.
	Category Field = "CATEGORY"
	// FullName is the display name as entered in the sheet.
	FullName Field = "FIRST_AND_LAST_NAME"
	// FirstName is the given name.
	FirstName Field = "FIRST_NAME"
	// LastName is the family name.
	LastName Field = "LAST_NAME"
	// Flag identifies the participant's country.
	Flag Field = "FLAG"
	// Photo references the participant photo asset.
	Photo Field = "PARTICIPANT_PHOTO"
	// CategoryImage references the category artwork.
	CategoryImage Field = "CATEGORY_IMAGE"
	// FlagImage references the flag artwork.
	FlagImage Field = "FLAG_IMAGE"
	// AgeOnEvent is the participant's age on the day of the event.
	AgeOnEvent Field = "AGE_ON_EVENT"
)

// Fields returns every profile field in spreadsheet column order.
func Fields() []Field {
	return []Field{
		SlotSchedule,
		Category,
		FullName,
		FirstName,
		LastName,
		Flag,
		Photo,
		CategoryImage,
		FlagImage,
		AgeOnEvent,
	}
}

// ParseField matches raw against the known field names, ignoring case and
// surrounding whitespace.
func ParseField(raw string) (Field, bool) {
	want := strings.ToUpper(strings.TrimSpace(raw))
	for _, f := range Fields() {
		if string(f) == want {
			return f, true
		}
	}
	return "", false
}

// Profile is one participant. Every field is optional.
type Profile struct {
	SlotSchedule  string `json:"SLOT_SCHEDULE,omitempty"`
	Category      string `json:"CATEGORY,omitempty"`
	FullName      string `json:"FIRST_AND_LAST_NAME,omitempty"`
	FirstName     string `json:"FIRST_NAME,omitempty"`
	LastName      string `json:"LAST_NAME,omitempty"`
	Flag          string `json:"FLAG,omitempty"`
	Photo         string `json:"PARTICIPANT_PHOTO,omitempty"`
	CategoryImage string `json:"CATEGORY_IMAGE,omitempty"`
	FlagImage     string `json:"FLAG_IMAGE,omitempty"`
	AgeOnEvent    string `json:"AGE_ON_EVENT,omitempty"`
}

func (p *Profile) slot(f Field) *string {
	switch f {
	case SlotSchedule:
		return &p.SlotSchedule
	case Category:
		return &p.Category
	case FullName:
		return &p.FullName
	case FirstName:
		return &p.FirstName
	case LastName:
		return &p.LastName
	case Flag:
		return &p.Flag
	case Photo:
		return &p.Photo
	case CategoryImage:
		return &p.CategoryImage
	case FlagImage:
		return &p.FlagImage
	case AgeOnEvent:
		return &p.AgeOnEvent
	}
	return nil
}

// Get returns the value stored for f, or "" for unknown fields.
func (p Profile) Get(f Field) string {
	if s := p.slot(f); s != nil {
		return *s
	}
	return ""
}

// Set stores v under f. Unknown fields are ignored.
func (p *Profile) Set(f Field, v string) {
	if s := p.slot(f); s != nil {
		*s = v
	}
}

// DisplayName prefers the combined name column and falls back to first and
// last name.
func (p Profile) DisplayName() string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	return strings.TrimSpace(strings.Join([]string{
		strings.TrimSpace(p.FirstName),
		strings.TrimSpace(p.LastName),
	}, " "))
}

// IsZero reports whether every field is empty.
func (p Profile) IsZero() bool {
	return p == Profile{}
}
