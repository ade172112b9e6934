package domain

import (
	"errors"
	"strings"
	"time"
)

// Layouts accepted for upstream timestamps. The transit API emits offsets
// without a colon (+0200); RFC3339 is accepted as a fallback.
var timestampLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

// Represents one candidate end-to-end rail itinerary.
// Departure and Arrival are kept as received so that one malformed
// candidate does not prevent the others from being decoded.
type Connection struct {
	Departure string
	Arrival   string
	Duration  string
	Transfers int
	Sections  []Section
}

// A single leg of a Connection. A nil Journey marks a walking transfer.
type Section struct {
	Departure SectionStop
	Arrival   SectionStop
	Journey   *Journey
}

type SectionStop struct {
	Time     string
	Station  string
	Platform string
}

// Vehicle descriptor of a ride leg, e.g. category "IC" and number "5".
type Journey struct {
	Category string
	Number   string
}

// Label is "<category> <number>" trimmed, so either field may be empty.
func (j Journey) Label() string {
	return strings.TrimSpace(j.Category + " " + j.Number)
}

func (s Section) IsWalk() bool { return s.Journey == nil }

// ParseTimestamp parses an upstream ISO timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("parse timestamp: empty")
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
