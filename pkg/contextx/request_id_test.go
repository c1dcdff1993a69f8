package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"track_market/pkg/contextx"
)

func TestRequestID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testRequestIDEmpty contextx.RequestID

	testRequestIDNotEmpty := contextx.RequestID("test-request-id")

	requestID, err := contextx.RequestIDFromContext(ctx)
	rq.Equal(testRequestIDEmpty, requestID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "request id: no value in context")

	ctx = contextx.WithRequestID(ctx, testRequestIDNotEmpty)

	requestID, err = contextx.RequestIDFromContext(ctx)
	rq.Equal(testRequestIDNotEmpty, requestID)
	rq.NoError(err)
}
