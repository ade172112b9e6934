package domain

import (
	"errors"
	"fmt"
)

// ConfigError reports missing or invalid startup configuration.
// It is fatal for the process.
type ConfigError struct {
	Key string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("config: %s is required", e.Key)
	}
	return fmt.Sprintf("config: %s: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// GeocodeError reports that a place name could not be resolved to coordinates.
type GeocodeError struct {
	Place string
	Err   error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocode %q: %v", e.Place, e.Err)
}

func (e *GeocodeError) Unwrap() error { return e.Err }

// RouteError reports that no driving duration could be extracted.
type RouteError struct {
	From, To Coordinates
	Err      error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("route %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *RouteError) Unwrap() error { return e.Err }

// TransitError reports a failed or unusable transit connections lookup.
type TransitError struct {
	From, To string
	Err      error
}

func (e *TransitError) Error() string {
	if e.From == "" && e.To == "" {
		return fmt.Sprintf("transit: %v", e.Err)
	}
	return fmt.Sprintf("transit %q -> %q: %v", e.From, e.To, e.Err)
}

func (e *TransitError) Unwrap() error { return e.Err }

// ErrNoConnections is matched by every NoConnectionsError via errors.Is.
var ErrNoConnections = errors.New("no connections found")

// NoConnectionsError reports that no usable connection was available.
// Err carries the disqualification reasons when candidates were skipped.
type NoConnectionsError struct {
	Err error
}

func (e *NoConnectionsError) Error() string {
	if e.Err == nil {
		return ErrNoConnections.Error()
	}
	return fmt.Sprintf("%v: %v", ErrNoConnections, e.Err)
}

func (e *NoConnectionsError) Unwrap() error { return e.Err }

func (e *NoConnectionsError) Is(target error) bool { return target == ErrNoConnections }
