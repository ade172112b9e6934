package config

import "time"

// ORSConfig configures the OpenRouteService geocoding and directions client.
type ORSConfig struct {
	APIKey  string `yaml:"-" validate:"required"`
	BaseURL string `yaml:"base_url" validate:"required,url"`
}

// TransitConfig configures the rail connections client.
type TransitConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Limit   int    `yaml:"limit" validate:"gte=1,lte=16"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// RailConfig controls itinerary selection. InvalidCandidates is "skip" or "strict".
type RailConfig struct {
	InvalidCandidates string `yaml:"invalid_candidates" validate:"oneof=skip strict"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	ORS     ORSConfig     `yaml:"ors"`
	Transit TransitConfig `yaml:"transit"`
	HTTP    HTTPConfig    `yaml:"http"`
	Rail    RailConfig    `yaml:"rail"`
}

// Defaults returns the configuration used when no file overrides it.
func Defaults() AppConfig {
	return AppConfig{
		ORS:     ORSConfig{BaseURL: "https://api.openrouteservice.org"},
		Transit: TransitConfig{BaseURL: "https://transport.opendata.ch", Limit: 5},
		HTTP:    HTTPConfig{Timeout: 10 * time.Second},
		Rail:    RailConfig{InvalidCandidates: "skip"},
	}
}
