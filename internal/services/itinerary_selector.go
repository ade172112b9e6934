package services

import (
	"fmt"
	"strings"
	"time"
	"travel-duration-service/internal/domain"
	"travel-duration-service/internal/platform/obs"

	"go.uber.org/multierr"
)

// SelectionPolicy decides what happens to a candidate whose departure or
// arrival cannot be parsed.
type SelectionPolicy int

const (
	// PolicySkip disqualifies the candidate and keeps ranking the rest.
	PolicySkip SelectionPolicy = iota
	// PolicyStrict aborts the whole selection.
	PolicyStrict
)

func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return PolicySkip, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicySkip, fmt.Errorf("unknown selection policy %q", s)
}

func (p SelectionPolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "skip"
}

// ConnectionCost ranks a connection at instant now: minutes until departure
// (clamped at zero once departed) plus minutes from departure to arrival.
// Both terms are whole minutes truncated toward zero.
func ConnectionCost(now time.Time, c domain.Connection) (int, error) {
	dep, err := domain.ParseTimestamp(c.Departure)
	if err != nil {
		return 0, fmt.Errorf("departure %q: %w", c.Departure, err)
	}

	arr, err := domain.ParseTimestamp(c.Arrival)
	if err != nil {
		return 0, fmt.Errorf("arrival %q: %w", c.Arrival, err)
	}

	wait := int(dep.Sub(now) / time.Minute)
	if wait < 0 {
		wait = 0
	}
	travel := int(arr.Sub(dep) / time.Minute)

	return wait + travel, nil
}

// SelectConnection returns the candidate with minimum ConnectionCost.
//
// Ties keep the earliest candidate in input order. The result is always one
// of the inputs. An empty input, or one where every candidate was
// disqualified under PolicySkip, yields *domain.NoConnectionsError.
func SelectConnection(
	now time.Time,
	conns []domain.Connection,
	policy SelectionPolicy,
) (domain.Connection, error) {
	if len(conns) == 0 {
		return domain.Connection{}, &domain.NoConnectionsError{}
	}

	bestIdx := -1
	bestCost := 0
	var disqualified error

	for i, c := range conns {
		cost, err := ConnectionCost(now, c)
		if err != nil {
			if policy == PolicyStrict {
				return domain.Connection{}, &domain.TransitError{Err: fmt.Errorf("select connection: candidate %d: %w", i, err)}
			}
			obs.Logger().Debugw("connection disqualified", "index", i, "err", err)
			disqualified = multierr.Append(disqualified, fmt.Errorf("candidate %d: %w", i, err))
			continue
		}

		if bestIdx == -1 || cost < bestCost {
			bestIdx = i
			bestCost = cost
		}
	}

	if bestIdx == -1 {
		return domain.Connection{}, &domain.NoConnectionsError{Err: disqualified}
	}

	return conns[bestIdx], nil
}
