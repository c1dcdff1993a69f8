package server

import (
	"context"
	"fmt"
	"net/http"

	"track_market/internal/domain/entity"
	"track_market/internal/domain/service/sale"
	"track_market/internal/metrics"
	"track_market/pkg/contextx"
	"track_market/pkg/httpx/reply"
	"track_market/pkg/httpx/req"
	"track_market/pkg/rest"
)

type estimator interface {
	Estimate(entity.Track) entity.Estimation
}

type evaluator interface {
	Evaluate(entity.Track) entity.Evaluation
}

type saleService interface {
	Sell(context.Context, sale.Order) (entity.Sale, error)
}

type TrackServer struct {
	estimator   estimator
	evaluator   evaluator
	saleService saleService
}

func NewTrackServer(
	estimator estimator,
	evaluator evaluator,
	saleService saleService,
) TrackServer {
	return TrackServer{
		estimator:   estimator,
		evaluator:   evaluator,
		saleService: saleService,
	}
}

func (s TrackServer) postV1TracksAnalyze(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.EstimationRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	estimation := s.estimator.Estimate(newDomainTrack(request, defaultEstimatorFileName))

	metrics.Estimations.WithLabelValues(metrics.KindEstimator).Inc()
	metrics.EstimatedPrice.WithLabelValues(metrics.KindEstimator).Observe(float64(estimation.Price))

	reply.JSON(ctx, w, http.StatusOK, newRESTAnalyzeTrack(estimation))

	return nil
}

func (s TrackServer) postV1TracksEvaluate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.EstimationRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	evaluation := s.evaluator.Evaluate(newDomainTrack(request, defaultEvaluatorFileName))

	metrics.Estimations.WithLabelValues(metrics.KindEvaluator).Inc()
	metrics.EstimatedPrice.WithLabelValues(metrics.KindEvaluator).Observe(float64(evaluation.Price))

	reply.JSON(ctx, w, http.StatusOK, newRESTEvaluateTrack(evaluation))

	return nil
}

func (s TrackServer) postV1TracksSell(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	requestID, err := contextx.RequestIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.RequestIDFromContext: %w", err)
	}

	var request rest.SellTrackRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	record, err := s.saleService.Sell(ctx, newDomainSaleOrder(requestID, request))
	if err != nil {
		return fmt.Errorf("saleService.Sell: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSale(record))

	return nil
}
