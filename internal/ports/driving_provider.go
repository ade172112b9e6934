package ports

import (
	"context"
	"travel-duration-service/internal/domain"
)

// Contract for estimating car travel time between two coordinates.
type DrivingDurationProvider interface {
	// Return the estimated driving duration in whole minutes.
	DrivingMinutes(ctx context.Context, from, to domain.Coordinates) (int, error)
}
