package distance

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// ORSProvider implements Geocoder and DrivingDurationProvider using
// OpenRouteService.
//
// Every call issues exactly one request; nothing is cached or retried.
// The provider is safe for concurrent use.
type ORSProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
}

func NewORSProvider(apiKey, baseURL string, timeout time.Duration) (*ORSProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openrouteservice.org"
	}

	provider := &ORSProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving-car",
	}

	return provider, nil
}

// normalize collapses whitespace so equivalent queries look the same upstream.
func (o *ORSProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
