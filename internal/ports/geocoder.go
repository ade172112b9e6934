package ports

import (
	"context"
	"travel-duration-service/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Return the coordinates of the best match for place.
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}
