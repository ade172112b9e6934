package app

import (
	"fmt"
	"time"
	"travel-duration-service/internal/adapters/distance"
	"travel-duration-service/internal/adapters/transit"
	"travel-duration-service/internal/config"
	"travel-duration-service/internal/services"
)

// NewTravelTimes wires the ORS and transit adapters behind the estimator
// ports. The CLI and the HTTP server share it.
func NewTravelTimes(cfg config.AppConfig) (*services.TravelTimes, error) {
	policy, err := services.ParseSelectionPolicy(cfg.Rail.InvalidCandidates)
	if err != nil {
		return nil, fmt.Errorf("new travel times: %w", err)
	}

	ors, err := distance.NewORSProvider(cfg.ORS.APIKey, cfg.ORS.BaseURL, cfg.HTTP.Timeout)
	if err != nil {
		return nil, fmt.Errorf("new travel times: %w", err)
	}

	return &services.TravelTimes{
		Connections: transit.NewOpendataClient(cfg.Transit.BaseURL, cfg.Transit.Limit, cfg.HTTP.Timeout),
		Geocoder:    ors,
		Driving:     ors,
		Policy:      policy,
	}, nil
}

// ServerWriteTimeout bounds a /travel-times response. The slower chain makes
// up to three sequential upstream calls, each limited by the client timeout.
// A zero client timeout disables the bound.
func ServerWriteTimeout(cfg config.AppConfig) time.Duration {
	if cfg.HTTP.Timeout <= 0 {
		return 0
	}
	return 3*cfg.HTTP.Timeout + 10*time.Second
}
