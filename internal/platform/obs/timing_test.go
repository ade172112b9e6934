package obs

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsOpAndError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(nil) })

	ctx := WithRequestID(context.Background(), "abc")

	var okErr error
	Time(ctx, "ok.op")(&okErr)

	failErr := errors.New("boom")
	Time(ctx, "fail.op")(&failErr)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}

	first := entries[0].ContextMap()
	if first["op"] != "ok.op" || first["req_id"] != "abc" {
		t.Fatalf("unexpected fields on first entry: %v", first)
	}
	if _, ok := first["err"]; ok {
		t.Fatalf("first entry should not carry an error: %v", first)
	}

	second := entries[1].ContextMap()
	if second["op"] != "fail.op" {
		t.Fatalf("unexpected op on second entry: %v", second)
	}
	if second["err"] != "boom" {
		t.Fatalf("second entry err = %v, want boom", second["err"])
	}
}

func TestLoggerDefaultsToNop(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}
	Logger().Infow("discarded")
}
