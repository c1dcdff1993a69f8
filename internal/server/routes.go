package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"track_market/pkg/httpx/reply"
	"track_market/pkg/logx"
	"track_market/pkg/middlewarex"
)

type HandlerOptions struct {
	LogFieldMaxLen      int
	MaxBodyBytes        int64
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
}

// NewHandler собирает роутер со всеми middleware. CORS стоит на уровне
// роутера, поэтому OPTIONS отвечает 200 на любом пути. Metrics снаружи
// Recovery, чтобы паника попадала в счётчик как 500.
func NewHandler(s Server, options HandlerOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.RequestID,
		middlewarex.Logger,
		middlewarex.Metrics,
		middlewarex.Recovery,
		middlewarex.CORS,
		middleware.RequestSize(options.MaxBodyBytes),
		middlewarex.RequestLogging(options.SensitiveDataMasker, options.LogFieldMaxLen),
		middlewarex.ResponseLogging(options.SensitiveDataMasker, options.LogFieldMaxLen),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		reply.NotFound(r.Context(), w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		reply.MethodNotAllowed(r.Context(), w)
	})

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/tracks", func(r chi.Router) {
			r.Post("/analyze", handler(s.postV1TracksAnalyze))
			r.Post("/evaluate", handler(s.postV1TracksEvaluate))
			r.Post("/sell", handler(s.postV1TracksSell))
		})
		r.Post("/withdrawals", handler(s.postV1Withdrawals))
	})

	// Пути старого API, на которые смотрит текущий фронтенд.
	r.Post("/analyze-track", handler(s.postV1TracksAnalyze))
	r.Post("/track-evaluation", handler(s.postV1TracksEvaluate))
	r.Post("/sell-track", handler(s.postV1TracksSell))
	r.Post("/withdraw", handler(s.postV1Withdrawals))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
