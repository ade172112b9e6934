package main

import (
	"net/http"
	"os"
	"time"
	"travel-duration-service/internal/api"
	"travel-duration-service/internal/app"
	"travel-duration-service/internal/config"
	"travel-duration-service/internal/platform/obs"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// main is the application composition root.
// It wires concrete adapters (ORS, transit) behind ports and starts the HTTP server.
func main() {
	logger := obs.InitLogger(os.Stderr, zapcore.InfoLevel)
	defer obs.SyncLogger()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	estimator, err := app.NewTravelTimes(cfg)
	if err != nil {
		logger.Fatal(err)
	}

	router := api.NewRouter(estimator)

	logger.Infow("server listening", "addr", ":"+port)

	// WriteTimeout leaves room for both chains to hit their client timeout.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      app.ServerWriteTimeout(cfg),
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal(srv.ListenAndServe())
}
