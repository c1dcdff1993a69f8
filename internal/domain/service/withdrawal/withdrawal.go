package withdrawal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"

	"track_market/internal/domain/entity"
	"track_market/internal/domain/value"
	"track_market/internal/metrics"
	"track_market/pkg/contextx"
	"track_market/pkg/errcodes"
	"track_market/pkg/logx"
)

const (
	transactionIDPrefix = "txn_"

	// EstimatedTime обещанное клиенту время зачисления. Ничего не планируется:
	// заявка остаётся в статусе pending.
	EstimatedTime = 30 * time.Second

	defaultPublishTimeout = 2 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type EventPublisher interface {
	PublishWithdrawal(ctx context.Context, withdrawal entity.Withdrawal) error
}

type Request struct {
	RequestID string
	Amount    decimal.Decimal
	Method    value.PayoutMethod
	Bank      value.BankCode
	Account   string
}

type Service struct {
	publisher      EventPublisher
	publishTimeout time.Duration
	sender         string
	now            func() time.Time
}

func NewService(publisher EventPublisher, sender string) *Service {
	return &Service{
		publisher:      publisher,
		publishTimeout: defaultPublishTimeout,
		sender:         sender,
		now:            time.Now,
	}
}

// WithPublishTimeout ограничивает ожидание брокера: ответ клиенту не ждёт
// дольше timeout.
func (s *Service) WithPublishTimeout(timeout time.Duration) *Service {
	s.publishTimeout = timeout
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Withdraw проверяет заявку и возвращает синтетическую транзакцию в статусе
// pending. Сумма проверяется раньше реквизитов.
func (s *Service) Withdraw(ctx context.Context, request Request) (entity.Withdrawal, error) {
	if err := validate(request); err != nil {
		metrics.Withdrawals.WithLabelValues(metrics.OutcomeRejected).Inc()
		return entity.Withdrawal{}, err
	}

	withdrawal := entity.Withdrawal{
		TransactionID: transactionIDPrefix + request.RequestID,
		Amount:        request.Amount,
		Status:        entity.WithdrawalStatusPending,
		BankCode:      request.Bank,
		Method:        request.Method,
		Account:       request.Account,
		Sender:        s.sender,
		EstimatedTime: EstimatedTime,
		CreatedAt:     s.now().UTC(),
		Message: fmt.Sprintf(
			"Перевод %s ₽ на %s (%s) обрабатывается. Деньги поступят через %d секунд.",
			request.Amount.String(),
			request.Method.Display(),
			request.Bank.DisplayName(),
			int(EstimatedTime.Seconds()),
		),
	}

	metrics.Withdrawals.WithLabelValues(metrics.OutcomeAccepted).Inc()

	publishCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.publisher.PublishWithdrawal(publishCtx, withdrawal); err != nil {
		metrics.WithdrawalEventFailures.Inc()
		logger(ctx).Error(
			"withdrawal event not published",
			slog.String(logx.FieldTransactionID, withdrawal.TransactionID),
			logx.Error(err),
		)
	}

	return withdrawal, nil
}

func validate(request Request) error {
	if !request.Amount.IsPositive() {
		return failure.NewInvalidArgumentError(
			fmt.Sprintf("withdrawal amount must be positive, got %s", request.Amount.String()),
			failure.WithCode(errcodes.InvalidWithdrawalAmount),
			failure.WithDescription("Неверная сумма для вывода"),
		)
	}

	if request.Bank == "" || request.Account == "" {
		return failure.NewInvalidArgumentError(
			"withdrawal bank and account are required",
			failure.WithCode(errcodes.MissingWithdrawalRequisites),
			failure.WithDescription("Заполните все реквизиты"),
		)
	}

	return nil
}
