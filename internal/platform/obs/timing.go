package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID attaches a request id to the context for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation, tagged with the request id.
// Usage: defer obs.Time(ctx, "op.name")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := requestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}

// Warn logs a non-fatal condition tagged with the request id.
func Warn(ctx context.Context, format string, args ...any) {
	log.Printf("req_id=%s warn: "+format, append([]any{requestID(ctx)}, args...)...)
}
