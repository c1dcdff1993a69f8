// Package metrics содержит доменные метрики маркетплейса. HTTP-метрики живут
// в pkg/middlewarex.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "track_market"

//nolint:gochecknoglobals
var (
	// Estimations количество оценок по виду оценщика (estimator, evaluator).
	Estimations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimations_total",
			Help:      "Number of track price estimations.",
		},
		[]string{"kind"},
	)

	// EstimatedPrice распределение выданных цен в рублях.
	EstimatedPrice = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "estimated_price_rub",
			Help:      "Distribution of estimated track prices.",
			Buckets:   []float64{1000, 2000, 3000, 5000, 8000, 12000, 18000, 25000},
		},
		[]string{"kind"},
	)

	// Sales количество выставленных треков по результату записи в хранилище.
	Sales = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Number of tracks put on sale by storage outcome.",
		},
		[]string{"storage"},
	)

	// SaleStorageFailures записи в хранилище, скрытые от клиента за assetUrl=null.
	SaleStorageFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sale_storage_failures_total",
			Help:      "Failed object storage writes while selling a track.",
		},
	)

	// Withdrawals количество заявок на вывод по результату проверки.
	Withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawals_total",
			Help:      "Number of withdrawal requests by outcome.",
		},
		[]string{"outcome"},
	)

	// WithdrawalEventFailures неудачные публикации событий о выводе.
	WithdrawalEventFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawal_event_failures_total",
			Help:      "Withdrawal events that could not be published.",
		},
	)
)

const (
	KindEstimator = "estimator"
	KindEvaluator = "evaluator"

	StorageStored   = "stored"
	StorageDegraded = "degraded"
	StorageFailed   = "failed"

	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)
