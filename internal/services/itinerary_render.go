package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"travel-duration-service/internal/domain"
)

// Itinerary is the rendered summary of one connection.
type Itinerary struct {
	Minutes   int
	Transfers int
	Legs      []string
}

func (it Itinerary) Header() string {
	return fmt.Sprintf("%d min | Transfers: %d", it.Minutes, it.Transfers)
}

// Lines returns the header followed by one line per rendered leg.
func (it Itinerary) Lines() []string {
	out := make([]string, 0, 1+len(it.Legs))
	out = append(out, it.Header())
	return append(out, it.Legs...)
}

func (it Itinerary) String() string {
	return strings.Join(it.Lines(), "\n")
}

// ParseDurationMinutes parses "HH:MM:SS" or "<days>dHH:MM:SS" into whole
// minutes. Days count as 1440 minutes each; seconds are dropped.
func ParseDurationMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)

	days := 0
	clock := s
	if before, after, found := strings.Cut(s, "d"); found {
		d, err := strconv.Atoi(before)
		if err != nil || d < 0 {
			return 0, fmt.Errorf("parse duration %q: invalid day count", s)
		}
		days = d
		clock = after
	}

	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("parse duration %q: want HH:MM:SS", s)
	}

	fields := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("parse duration %q: invalid field %q", s, p)
		}
		fields[i] = v
	}

	return days*24*60 + fields[0]*60 + fields[1], nil
}

// RenderItinerary formats c as a header plus one line per section.
// Sections without a parseable departure or arrival time are left out;
// an unparseable duration renders as 0 minutes.
func RenderItinerary(c domain.Connection) Itinerary {
	minutes, err := ParseDurationMinutes(c.Duration)
	if err != nil {
		minutes = 0
	}

	legs := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		if leg, ok := renderSection(s); ok {
			legs = append(legs, leg)
		}
	}

	return Itinerary{
		Minutes:   minutes,
		Transfers: c.Transfers,
		Legs:      legs,
	}
}

func renderSection(s domain.Section) (string, bool) {
	dep, err := clockTime(s.Departure.Time)
	if err != nil {
		return "", false
	}
	arr, err := clockTime(s.Arrival.Time)
	if err != nil {
		return "", false
	}

	to := orPlaceholder(s.Arrival.Station, "?")

	if s.IsWalk() {
		return fmt.Sprintf("%s-%s | walk → %s", dep, arr, to), true
	}

	from := orPlaceholder(s.Departure.Station, "?")
	platform := orPlaceholder(s.Departure.Platform, "-")

	return fmt.Sprintf(
		"%s-%s | Line: %s | via [%s] → [%s] | Platform: %s",
		dep, arr, s.Journey.Label(), from, to, platform,
	), true
}

// clockTime renders a timestamp as HH:MM in the offset it was given in.
func clockTime(ts string) (string, error) {
	if strings.TrimSpace(ts) == "" {
		return "", errors.New("missing timestamp")
	}
	t, err := domain.ParseTimestamp(ts)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
