package ports

import (
	"context"
	"travel-duration-service/internal/domain"
)

// Port: a boundary for retrieving candidate rail connections.
type ConnectionProvider interface {
	// Return candidate connections between two named places, in upstream order.
	Connections(ctx context.Context, from, to string) ([]domain.Connection, error)
}
