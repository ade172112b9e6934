package api

import (
	"net/http"
	"travel-duration-service/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see the Estimator interface, never concrete adapters.
func NewRouter(estimator handlers.Estimator) http.Handler {
	mux := http.NewServeMux()

	travelHandler := &handlers.TravelHandler{Estimator: estimator}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/travel-times", travelHandler.TravelTimes)

	return loggingMiddleware(mux)
}
