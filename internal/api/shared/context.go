package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"log/slog"
	"time"
)

// ContextKey is the type for values this package stores in a request context.
type ContextKey string

const (
	// TraceIDKey is the context key under which the request trace ID is stored.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID. Hex
	// encoding doubles it, so IDs are 32 characters on the wire.
	TraceIDLength = 16
)

// SetTraceID returns a child context carrying a freshly generated trace ID.
// Log entries and error responses for the same request quote it, so the two
// can be correlated.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the trace ID stored in the context, or an empty string
// when the context carries none.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID returns a hex-encoded random trace ID. When the system
// entropy source fails it logs the failure and degrades to a clock-based ID
// rather than returning a constant.
func generateTraceID() string {
	id, err := traceIDFrom(rand.Reader)
	if err != nil {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}
	return id
}

// traceIDFrom reads TraceIDLength bytes from r and hex encodes them.
func traceIDFrom(r io.Reader) (string, error) {
	b := make([]byte, TraceIDLength)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// generateFallbackTraceID builds a trace ID from the clock. Uniqueness is
// weaker than the random path but still sufficient for log correlation.
func generateFallbackTraceID() string {
	id := make([]byte, TraceIDLength)

	binary.BigEndian.PutUint64(id[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint32(id[8:12], uint32(time.Now().Nanosecond()))
	binary.BigEndian.PutUint32(id[12:16], uint32(time.Now().Unix()))

	return hex.EncodeToString(id)
}
