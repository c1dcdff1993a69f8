package connectors

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"track_market/pkg/logx"
)

const kafkaBatchTimeout = 10 * time.Millisecond

// Kafka lazily builds a writer for a single topic.
type Kafka struct {
	value        *kafka.Writer
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	init         sync.Once
}

func (k *Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

func (k *Kafka) Writer(ctx context.Context) *kafka.Writer {
	k.init.Do(func() {
		k.value = &kafka.Writer{
			//nolint:exhaustruct
			Addr:                   kafka.TCP(k.Brokers...),
			Topic:                  k.Topic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           kafkaBatchTimeout,
			AllowAutoTopicCreation: true,
			WriteTimeout:           k.WriteTimeout,
		}

		logger(ctx).Info(
			"kafka writer created",
			slog.String("brokers", strings.Join(k.Brokers, ",")),
			slog.String(logx.FieldTopic, k.Topic),
		)
	})

	return k.value
}

func (k *Kafka) Close(ctx context.Context) {
	if k.value == nil {
		return
	}

	if err := k.value.Close(); err != nil {
		logger(ctx).Error("kafkaWriter.Close", logx.Error(err))
	}

	logger(ctx).Info("kafka writer closed", slog.String(logx.FieldTopic, k.Topic))
}
