package transit

import (
	"context"
	"travel-duration-service/internal/domain"
)

// MockProvider returns fixed connections or a fixed error.
type MockProvider struct {
	Result []domain.Connection
	Err    error
}

func (p *MockProvider) Connections(ctx context.Context, from, to string) ([]domain.Connection, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Result, nil
}
