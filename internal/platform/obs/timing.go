package obs

import (
	"context"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID tags ctx so that Time can correlate operations.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration of op when the returned func runs, with the error
// pointed to by errp if any.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			Logger().Debugw("op failed", "req_id", reqID, "op", name, "dur", dur, "err", *errp)
			return
		}
		Logger().Debugw("op done", "req_id", reqID, "op", name, "dur", dur)
	}
}
