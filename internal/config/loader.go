package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"travel-duration-service/internal/domain"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	apiKeyEnv     = "ORS_API_KEY"
	configPathEnv = "TDS_CONFIG"
)

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the configuration from defaults, the optional YAML file named
// by TDS_CONFIG (default tds.yml) and the ORS_API_KEY environment value.
// A missing file is not an error; a missing key is a *domain.ConfigError.
func Load() (AppConfig, error) {
	cfg := Defaults()

	path := Get(configPathEnv, "tds.yml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, &domain.ConfigError{Key: path, Err: fmt.Errorf("parse yaml: %w", err)}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return AppConfig{}, &domain.ConfigError{Key: path, Err: err}
	}

	cfg.ORS.APIKey = strings.TrimSpace(os.Getenv(apiKeyEnv))
	if cfg.ORS.APIKey == "" {
		return AppConfig{}, &domain.ConfigError{Key: apiKeyEnv}
	}

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validate checks struct constraints and reports the first offending field.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &domain.ConfigError{
				Key: fe.Namespace(),
				Err: fmt.Errorf("failed %q rule (value %v)", fe.Tag(), fe.Value()),
			}
		}
		return &domain.ConfigError{Key: "config", Err: err}
	}
	return nil
}
