package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"travel-duration-service/internal/app"
	"travel-duration-service/internal/config"
	"travel-duration-service/internal/platform/obs"
	"travel-duration-service/internal/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// main prints rail and driving travel times between two places.
// Exit status only reflects usage and configuration errors.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := obs.InitLogger(stderr, zapcore.WarnLevel)
	defer obs.SyncLogger()

	if err := godotenv.Load(); err != nil {
		logger.Debugw("no .env file found (using environment variables)")
	}

	if len(args) < 3 {
		fmt.Fprintln(stderr, "Usage: tds <from> <to>")
		return 1
	}
	from, to := args[1], args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	estimator, err := app.NewTravelTimes(cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	report := estimator.Estimate(obs.WithRequestID(ctx, "cli"), from, to)
	writeReport(stdout, stderr, report)

	return 0
}

// writeReport prints each chain's result to stdout, or its error to stderr.
func writeReport(stdout, stderr io.Writer, r services.Report) {
	if r.Rail.Err != nil {
		fmt.Fprintf(stderr, "Train travel error: %v\n\n", r.Rail.Err)
	} else {
		fmt.Fprintf(stdout, "Optimal travel time by train: %s\n\n", r.Rail.Itinerary)
	}

	if r.Driving.Err != nil {
		fmt.Fprintf(stderr, "Car travel error: %v\n", r.Driving.Err)
	} else {
		fmt.Fprintf(stdout, "Estimated travel time by vehicle: %d min\n", r.Driving.Minutes)
	}
}
