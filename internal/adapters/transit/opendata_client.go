package transit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"travel-duration-service/internal/domain"
	"travel-duration-service/internal/platform/obs"
)

// OpendataClient implements ConnectionProvider against the
// transport.opendata.ch connections API.
type OpendataClient struct {
	session *http.Client
	baseURL string
	limit   int
}

func NewOpendataClient(baseURL string, limit int, timeout time.Duration) *OpendataClient {
	if baseURL == "" {
		baseURL = "https://transport.opendata.ch"
	}
	if limit <= 0 {
		limit = 5
	}

	return &OpendataClient{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   limit,
	}
}

// Connections requests up to the configured limit of candidate connections.
// A response without a connections array is a *domain.TransitError; an
// empty array yields an empty slice.
func (c *OpendataClient) Connections(ctx context.Context, from, to string) (_ []domain.Connection, err error) {
	defer obs.Time(ctx, "transit.Connections")(&err)

	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, &domain.TransitError{From: from, To: to, Err: errors.New("origin and destination must be non-empty")}
	}

	decoded, err := c.fetch(ctx, from, to)
	if err != nil {
		return nil, &domain.TransitError{From: from, To: to, Err: err}
	}

	if decoded.Connections == nil {
		return nil, &domain.TransitError{From: from, To: to, Err: errors.New("invalid API response: missing connections")}
	}

	out := make([]domain.Connection, 0, len(decoded.Connections))
	for _, cd := range decoded.Connections {
		out = append(out, cd.toDomain())
	}

	return out, nil
}

func (c *OpendataClient) fetch(ctx context.Context, from, to string) (*connectionsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/connections", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("from", from)
	q.Set("to", to)
	q.Set("limit", strconv.Itoa(c.limit))
	req.URL.RawQuery = q.Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded connectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode connections response: %w", err)
	}

	return &decoded, nil
}
