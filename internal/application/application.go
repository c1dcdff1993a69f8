package application

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"track_market/internal/config"
	"track_market/internal/domain/service/pricing"
	"track_market/internal/domain/service/sale"
	"track_market/internal/domain/service/withdrawal"
	"track_market/internal/infrastructure/events"
	"track_market/internal/infrastructure/objectstorage"
	"track_market/internal/server"
	"track_market/pkg/application/connectors"
	"track_market/pkg/application/modules"
	"track_market/pkg/contextx"
	"track_market/pkg/logx"
	"track_market/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Run поднимает API, сервер метрик и пробы и блокируется до отмены ctx.
func Run(ctx context.Context, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	// Object storage
	storageConnector := &connectors.ObjectStorage{
		Endpoint:        cfg.Storage.Endpoint,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Region:          cfg.Storage.Region,
		UseSSL:          cfg.Storage.UseSSL,
		LogFieldMaxLen:  cfg.HTTP.LogFieldMaxLen,
	}

	storage := objectstorage.NewStorage(storageConnector.Client(ctx), objectstorage.Options{
		Bucket:      cfg.Storage.Bucket,
		CDNBaseURL:  cfg.Storage.CDNBaseURL,
		AccessKeyID: cfg.Storage.AccessKeyID,
	})

	// Withdrawal events
	var publisher withdrawal.EventPublisher = events.NopPublisher{}

	if cfg.Kafka.Enabled() {
		kafkaConnector := &connectors.Kafka{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.WithdrawalTopic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}
		defer kafkaConnector.Close(context.WithoutCancel(ctx))

		publisher = events.NewKafkaPublisher(kafkaConnector.Writer(ctx))
	} else {
		logger(ctx).Info("kafka brokers are not configured, withdrawal events are disabled")
	}

	logger(ctx).Info("generative model key", slog.Bool("configured", cfg.AI.Configured()))

	// Services
	random := pricing.GlobalRandom()

	saleService := sale.NewService(storage, cfg.Storage.Timeout).
		WithFailOnStorageError(cfg.Storage.FailOnError)
	withdrawalService := withdrawal.NewService(publisher, cfg.Payout.SenderName).
		WithPublishTimeout(cfg.Kafka.WriteTimeout)

	srv := server.NewServer(
		server.NewTrackServer(
			pricing.NewEstimator(random),
			pricing.NewEvaluator(random),
			saleService,
		),
		server.NewWithdrawalServer(withdrawalService),
	)

	handler := server.NewHandler(srv, server.HandlerOptions{
		LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
		MaxBodyBytes:        cfg.HTTP.MaxBodyBytes,
		SensitiveDataMasker: logx.NewSensitiveDataMasker(),
	})

	// Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, handler)

	modules.MetricServer{
		ListenAddress: cfg.App.MetricsAddr,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddress,
		Checks: map[string]probe.Check{
			"object-storage": storage.Ready,
		},
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}
