package distance

import (
	"context"
	"errors"
	"travel-duration-service/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinates
	Minutes  int
}

// MockProvider serves geocodes and driving durations from fixed tables.
type MockProvider struct {
	places map[string]domain.Coordinates
	routes map[[2]domain.Coordinates]int
}

func NewMockProvider(places map[string]domain.Coordinates, pairs []MockPair) *MockProvider {
	routes := make(map[[2]domain.Coordinates]int, len(pairs))
	for _, p := range pairs {
		routes[[2]domain.Coordinates{p.From, p.To}] = p.Minutes
	}
	return &MockProvider{places: places, routes: routes}
}

func (p *MockProvider) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	c, ok := p.places[place]
	if !ok {
		return domain.Coordinates{}, &domain.GeocodeError{Place: place, Err: errors.New("unknown place")}
	}
	return c, nil
}

func (p *MockProvider) DrivingMinutes(ctx context.Context, from, to domain.Coordinates) (int, error) {
	m, ok := p.routes[[2]domain.Coordinates{from, to}]
	if !ok {
		return 0, &domain.RouteError{From: from, To: to, Err: errors.New("missing pair")}
	}
	return m, nil
}
