package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"travel-duration-service/internal/domain"
	"travel-duration-service/internal/platform/obs"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []*float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves place using OpenRouteService (/geocode/search) and
// returns the first feature's coordinates.
func (o *ORSProvider) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := o.normalize(place)
	if norm == "" {
		return domain.Coordinates{}, &domain.GeocodeError{Place: place, Err: errors.New("place must be non-empty")}
	}

	coords, err := o.geocode(ctx, norm)
	if err != nil {
		return domain.Coordinates{}, &domain.GeocodeError{Place: norm, Err: err}
	}

	return coords, nil
}

func (o *ORSProvider) geocode(ctx context.Context, text string) (domain.Coordinates, error) {
	endpoint := o.baseURL + "/geocode/search"

	req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("get geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("api_key", o.apiKey)
	q.Set("text", text)
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := o.do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, errors.New("no geocode results")
	}

	coords := decoded.Features[0].Geometry.Coordinates

	if len(coords) != 2 || coords[0] == nil || coords[1] == nil {
		return domain.Coordinates{}, errors.New("invalid coordinate format")
	}

	return domain.Coordinates{
		Lon: *coords[0],
		Lat: *coords[1],
	}, nil
}
