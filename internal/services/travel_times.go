package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"travel-duration-service/internal/domain"
	"travel-duration-service/internal/platform/obs"
	"travel-duration-service/internal/ports"
)

// TravelTimes estimates rail and driving travel times between two places.
// The rail chain needs one connections request; the driving chain needs two
// geocodes and one route request. The chains share no state.
type TravelTimes struct {
	Connections ports.ConnectionProvider
	Geocoder    ports.Geocoder
	Driving     ports.DrivingDurationProvider
	Policy      SelectionPolicy
	Now         func() time.Time
}

type RailResult struct {
	Connection domain.Connection
	Itinerary  Itinerary
	Err        error
}

type DrivingResult struct {
	Minutes int
	Err     error
}

// Report holds the outcome of both chains. Each chain's Err is independent.
type Report struct {
	From    string
	To      string
	Rail    RailResult
	Driving DrivingResult
}

func (t *TravelTimes) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

// Estimate runs both chains concurrently and waits for both. A failure in
// one chain is recorded in its result and never cancels the other.
func (t *TravelTimes) Estimate(ctx context.Context, from, to string) Report {
	report := Report{From: from, To: to}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		conn, it, err := t.Rail(ctx, from, to)
		report.Rail = RailResult{Connection: conn, Itinerary: it, Err: err}
	}()

	go func() {
		defer wg.Done()
		minutes, err := t.DrivingMinutes(ctx, from, to)
		report.Driving = DrivingResult{Minutes: minutes, Err: err}
	}()

	wg.Wait()

	return report
}

// Rail fetches candidate connections, selects the best one at the current
// time and renders it.
func (t *TravelTimes) Rail(ctx context.Context, from, to string) (_ domain.Connection, _ Itinerary, err error) {
	defer obs.Time(ctx, "travel.Rail")(&err)

	if t.Connections == nil {
		return domain.Connection{}, Itinerary{}, errors.New("rail: no connection provider configured")
	}

	now := t.now()

	conns, err := t.Connections.Connections(ctx, from, to)
	if err != nil {
		return domain.Connection{}, Itinerary{}, fmt.Errorf("rail: %w", err)
	}

	best, err := SelectConnection(now, conns, t.Policy)
	if err != nil {
		return domain.Connection{}, Itinerary{}, fmt.Errorf("rail: %w", err)
	}

	return best, RenderItinerary(best), nil
}

// DrivingMinutes geocodes both places and returns the driving duration in
// whole minutes.
func (t *TravelTimes) DrivingMinutes(ctx context.Context, from, to string) (_ int, err error) {
	defer obs.Time(ctx, "travel.DrivingMinutes")(&err)

	if t.Geocoder == nil || t.Driving == nil {
		return 0, errors.New("driving: no geocoder or driving provider configured")
	}

	fromCoord, err := t.Geocoder.Geocode(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("driving: origin: %w", err)
	}

	toCoord, err := t.Geocoder.Geocode(ctx, to)
	if err != nil {
		return 0, fmt.Errorf("driving: destination: %w", err)
	}

	minutes, err := t.Driving.DrivingMinutes(ctx, fromCoord, toCoord)
	if err != nil {
		return 0, fmt.Errorf("driving: %w", err)
	}

	return minutes, nil
}
