package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"travel-duration-service/internal/domain"
	"travel-duration-service/internal/platform/obs"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Duration *float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// DrivingMinutes requests a driving route between two coordinates from the
// OpenRouteService directions endpoint and returns its duration rounded to
// the nearest minute.
func (o *ORSProvider) DrivingMinutes(
	ctx context.Context,
	from domain.Coordinates,
	to domain.Coordinates,
) (_ int, err error) {
	defer obs.Time(ctx, "ors.DrivingMinutes")(&err)

	seconds, err := o.fetchRouteDuration(ctx, from, to)
	if err != nil {
		return 0, &domain.RouteError{From: from, To: to, Err: err}
	}

	return int(math.Round(seconds / 60)), nil
}

func (o *ORSProvider) fetchRouteDuration(ctx context.Context, from, to domain.Coordinates) (float64, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{from.CoordsToList(), to.CoordsToList()},
	})
	if err != nil {
		return 0, fmt.Errorf("marshal directions request: %w", err)
	}

	req, err := o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("directions request: %w", err)
	}

	resp, err := o.do(req)
	if err != nil {
		return 0, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return 0, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Routes) == 0 || dr.Routes[0].Summary.Duration == nil {
		return 0, errors.New("missing or invalid duration")
	}

	seconds := *dr.Routes[0].Summary.Duration
	if math.IsNaN(seconds) || seconds < 0 {
		return 0, fmt.Errorf("invalid duration %v", seconds)
	}

	return seconds, nil
}
