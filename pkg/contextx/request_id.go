package contextx

import (
	"context"
	"fmt"
)

// RequestID identifies a single API call. Unlike TraceID it is always
// generated by the server and is used to derive track and transaction ids.
type RequestID string

type contextKeyRequestID struct{}

func (r RequestID) String() string {
	return string(r)
}

func WithRequestID(ctx context.Context, requestID RequestID) context.Context {
	return context.WithValue(ctx, contextKeyRequestID{}, requestID)
}

func RequestIDFromContext(ctx context.Context) (RequestID, error) {
	requestID, ok := ctx.Value(contextKeyRequestID{}).(RequestID)
	if !ok {
		return "", fmt.Errorf("request id: %w", ErrNoValue)
	}

	return requestID, nil
}
