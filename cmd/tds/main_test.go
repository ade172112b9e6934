package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"tds", "Bern"}, &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Usage: tds <from> <to>") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout = %q, want empty", stdout.String())
	}
}

func TestRunMissingAPIKey(t *testing.T) {
	t.Setenv("ORS_API_KEY", "")
	t.Setenv("TDS_CONFIG", filepath.Join(t.TempDir(), "none.yml"))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"tds", "Zürich", "Bern"}, &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "ORS_API_KEY") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

// upstream fakes both external services. routeBody is the directions
// response body.
func upstream(t *testing.T, routeBody string) string {
	t.Helper()

	dep := time.Now().Add(10 * time.Minute).Format("2006-01-02T15:04:05-0700")
	arr := time.Now().Add(70 * time.Minute).Format("2006-01-02T15:04:05-0700")

	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[{"geometry":{"coordinates":[8.5,47.3]}}]}`))
	})
	mux.HandleFunc("/v2/directions/driving-car", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(routeBody))
	})
	mux.HandleFunc("/v1/connections", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"connections":[{"from":{"departure":%q},"to":{"arrival":%q},"duration":"00d01:00:00","transfers":0,"sections":[
			{"departure":{"departure":%q,"platform":"3","station":{"name":"Zürich HB"}},"arrival":{"arrival":%q,"station":{"name":"Bern"}},"journey":{"category":"IR","number":"15"}}
		]}]}`, dep, arr, dep, arr)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL
}

func writeTestConfig(t *testing.T, baseURL string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tds.yml")
	body := fmt.Sprintf("ors:\n  base_url: %s\ntransit:\n  base_url: %s\nhttp:\n  timeout: 5s\n", baseURL, baseURL)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TDS_CONFIG", path)
	t.Setenv("ORS_API_KEY", "test-key")
}

func TestRunPrintsBothEstimates(t *testing.T) {
	writeTestConfig(t, upstream(t, `{"routes":[{"summary":{"duration":4500}}]}`))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"tds", "Zürich", "Bern"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, "Optimal travel time by train: 60 min | Transfers: 0\n") {
		t.Fatalf("missing train header in %q", out)
	}
	if !strings.Contains(out, "| Line: IR 15 | via [Zürich HB] → [Bern] | Platform: 3") {
		t.Fatalf("missing train leg in %q", out)
	}
	if !strings.Contains(out, "Estimated travel time by vehicle: 75 min\n") {
		t.Fatalf("missing driving estimate in %q", out)
	}
}

func TestRunDrivingFailureKeepsTrain(t *testing.T) {
	writeTestConfig(t, upstream(t, `{"routes":[{"summary":{}}]}`))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"tds", "Zürich", "Bern"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Optimal travel time by train: 60 min") {
		t.Fatalf("train output missing: %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "vehicle") {
		t.Fatalf("driving estimate should not be printed: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Car travel error:") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
