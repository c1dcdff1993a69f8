package middlewarex_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"track_market/pkg/contextx"
	"track_market/pkg/logx"
	"track_market/pkg/middlewarex"
)

func TestCORS(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name         string
		method       string
		statusCode   int
		body         string
		preflight    bool
		nextExecuted bool
	}{
		{
			name:       "Preflight",
			method:     http.MethodOptions,
			statusCode: http.StatusOK,
			body:       "",
			preflight:  true,
		},
		{
			name:         "Regular request",
			method:       http.MethodPost,
			statusCode:   http.StatusTeapot,
			body:         "next",
			nextExecuted: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			nextExecuted := false

			handler := middlewarex.CORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextExecuted = true

				w.WriteHeader(http.StatusTeapot)
				w.Write([]byte("next")) //nolint:errcheck
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tc.method, "/sell-track", http.NoBody))

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal(tc.body, w.Body.String())
			rq.Equal(tc.nextExecuted, nextExecuted)
			rq.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))

			if tc.preflight {
				rq.Equal("POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
				rq.Equal("Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
				rq.Equal("86400", w.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	rq := require.New(t)

	var got contextx.RequestID

	handler := middlewarex.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		var err error

		got, err = contextx.RequestIDFromContext(r.Context())
		rq.NoError(err)
	}))

	r := httptest.NewRequest(http.MethodPost, "/withdraw", http.NoBody)
	r.Header.Set("X-Request-Id", "../../client-chosen")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	const xidLen = 20

	rq.Len(got.String(), xidLen)
	rq.NotEqual("../../client-chosen", got.String())
	rq.Equal(got.String(), w.Header().Get("X-Request-Id"))
}

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var got contextx.TraceID

	handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		var err error

		got, err = contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)
	}))

	r := httptest.NewRequest(http.MethodPost, "/withdraw", http.NoBody)
	r.Header.Set("X-Trace-Id", "trace-from-client")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	rq.Equal(contextx.TraceID("trace-from-client"), got)
	rq.Equal("trace-from-client", w.Header().Get("X-Trace-Id"))

	for _, traceID := range []string{"", "bad\nline", strings.Repeat("a", 65)} {
		r = httptest.NewRequest(http.MethodPost, "/withdraw", http.NoBody)
		r.Header.Set("X-Trace-Id", traceID)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		rq.NotEqual(contextx.TraceID(traceID), got)
		rq.Len(got.String(), 20)
		rq.Equal(got.String(), w.Header().Get("X-Trace-Id"))
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	r = r.WithContext(contextx.WithLogger(r.Context(), log))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(buf.String(), "panic in handler")
	rq.Contains(buf.String(), "boom")
}

func TestRequestAndResponseLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 4096)(
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 4096)(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"transactionId":"txn_1","account":"79990001122"}`)) //nolint:errcheck
			}),
		),
	)

	body := `{"amount":100,"bank":"sber","account":"79990001122"}`

	r := httptest.NewRequest(http.MethodPost, "/withdraw", strings.NewReader(body))
	r = r.WithContext(contextx.WithLogger(r.Context(), log))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	rq.Equal(http.StatusOK, w.Code)
	rq.Contains(w.Body.String(), "79990001122")
	rq.NotContains(buf.String(), "79990001122")
	rq.Contains(buf.String(), logx.FieldHTTPRequest)
	rq.Contains(buf.String(), logx.FieldHTTPResponse)
}

func TestRequestLoggingSkipsAudioBody(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, nil))

	var received string

	handler := middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 4096)(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			b, err := io.ReadAll(r.Body)
			rq.NoError(err)

			received = string(b)
		}),
	)

	r := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("ID3-raw-audio-bytes"))
	r.Header.Set("Content-Type", "audio/mpeg")
	r = r.WithContext(contextx.WithLogger(r.Context(), log))

	handler.ServeHTTP(httptest.NewRecorder(), r)

	rq.Equal("ID3-raw-audio-bytes", received)
	rq.Contains(buf.String(), logx.FieldHTTPRequest)
	rq.NotContains(buf.String(), "ID3-raw-audio-bytes")
}

func TestLoggingMasksValuesLongerThanLimit(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, nil))

	audio := strings.Repeat("SUQzBAAA", 2048)
	account := strings.Repeat("4", 8192)

	handler := middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 4096)(
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 4096)(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"account":"` + account + `"}`)) //nolint:errcheck
			}),
		),
	)

	body := `{"fileName":"a.mp3","price":100,"audioData":"` + audio + `"}`

	r := httptest.NewRequest(http.MethodPost, "/sell-track", strings.NewReader(body))
	r = r.WithContext(contextx.WithLogger(r.Context(), log))

	handler.ServeHTTP(httptest.NewRecorder(), r)

	rq.Contains(buf.String(), `\"audioData\":\"[MASKED]\"`)
	rq.Contains(buf.String(), `\"account\":\"[MASKED]\"`)
	rq.NotContains(buf.String(), "SUQzBAAA")
	rq.NotContains(buf.String(), "4444444444")
}
