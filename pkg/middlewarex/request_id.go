package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"track_market/pkg/contextx"
)

const headerNameRequestID = "X-Request-Id"

// RequestID always generates a fresh id; client supplied values are ignored
// because the id ends up in storage keys.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := xid.New().String()

		ctx := contextx.WithRequestID(r.Context(), contextx.RequestID(requestID))

		w.Header().Set(headerNameRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
