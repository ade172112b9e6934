package transit

import (
	"bytes"
	"encoding/json"
	"travel-duration-service/internal/domain"
)

type connectionsResponse struct {
	Connections []connectionDTO `json:"connections"`
}

type connectionDTO struct {
	From struct {
		Departure string `json:"departure"`
	} `json:"from"`
	To struct {
		Arrival string `json:"arrival"`
	} `json:"to"`
	Duration  string       `json:"duration"`
	Transfers int          `json:"transfers"`
	Sections  []sectionDTO `json:"sections"`
}

type sectionDTO struct {
	Departure stopDTO     `json:"departure"`
	Arrival   stopDTO     `json:"arrival"`
	Journey   *journeyDTO `json:"journey"`
}

type stopDTO struct {
	Departure string      `json:"departure"`
	Arrival   string      `json:"arrival"`
	Platform  looseString `json:"platform"`
	Station   struct {
		Name looseString `json:"name"`
	} `json:"station"`
}

type journeyDTO struct {
	Category looseString `json:"category"`
	Number   looseString `json:"number"`
}

// looseString accepts a JSON string, number or null; any other value decodes
// as empty. Line numbers, platforms and station names are display-only and
// must not fail the whole response.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*s = ""
		return nil
	}
	*s = looseString(n.String())
	return nil
}

func (c connectionDTO) toDomain() domain.Connection {
	sections := make([]domain.Section, 0, len(c.Sections))
	for _, s := range c.Sections {
		sec := domain.Section{
			Departure: domain.SectionStop{
				Time:     s.Departure.Departure,
				Station:  string(s.Departure.Station.Name),
				Platform: string(s.Departure.Platform),
			},
			Arrival: domain.SectionStop{
				Time:    s.Arrival.Arrival,
				Station: string(s.Arrival.Station.Name),
			},
		}
		if s.Journey != nil {
			sec.Journey = &domain.Journey{
				Category: string(s.Journey.Category),
				Number:   string(s.Journey.Number),
			}
		}
		sections = append(sections, sec)
	}

	return domain.Connection{
		Departure: c.From.Departure,
		Arrival:   c.To.Arrival,
		Duration:  c.Duration,
		Transfers: c.Transfers,
		Sections:  sections,
	}
}
