package middlewarex

import (
	"net/http"
	"regexp"

	"github.com/rs/xid"

	"track_market/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// Клиентский trace id попадает в логи и supportId, поэтому принимается только
// короткое значение без управляющих символов.
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`) //nolint:gochecknoglobals

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if !traceIDPattern.MatchString(traceID) {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
