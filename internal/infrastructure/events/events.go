// Package events публикует доменные события маркетплейса.
package events

import (
	"context"

	"track_market/internal/domain/entity"
	"track_market/pkg/contextx"
)

const EventTypeWithdrawalRequested = "withdrawal.requested"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NopPublisher используется, когда брокеры не настроены.
type NopPublisher struct{}

func (NopPublisher) PublishWithdrawal(ctx context.Context, withdrawal entity.Withdrawal) error {
	logger(ctx).Debug("withdrawal event skipped: kafka is disabled")

	return nil
}
