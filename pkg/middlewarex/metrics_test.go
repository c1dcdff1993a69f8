package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"track_market/pkg/middlewarex"
)

func TestMetricsCountsPanics(t *testing.T) {
	rq := require.New(t)

	handler := middlewarex.Metrics(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	before := requestsTotal(rq, http.MethodPatch, "unmatched", "500")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/tracks", nil))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.InDelta(before+1, requestsTotal(rq, http.MethodPatch, "unmatched", "500"), 0)
}

func requestsTotal(rq *require.Assertions, method, route, status string) float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	rq.NoError(err)

	for _, family := range families {
		if family.GetName() != "track_market_http_requests_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			labels := make(map[string]string, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}

			if labels["method"] == method && labels["route"] == route && labels["status"] == status {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}
