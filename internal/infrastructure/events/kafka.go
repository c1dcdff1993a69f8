package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"track_market/internal/domain"
	"track_market/internal/domain/entity"
	"track_market/pkg/errcodes"
	"track_market/pkg/logx"
	"track_market/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	headerEventType = "event-type"
	visibleAccount  = 4
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// WithdrawalEvent полезная нагрузка события. Реквизиты передаются только
// последними цифрами.
type WithdrawalEvent struct {
	EventID       string          `json:"eventId"`
	Type          string          `json:"type"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Bank          string          `json:"bank"`
	Method        string          `json:"method"`
	AccountTail   string          `json:"accountTail"`
	Sender        string          `json:"sender"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type KafkaPublisher struct {
	writer  messageWriter
	newUUID func() string
}

func NewKafkaPublisher(writer messageWriter) KafkaPublisher {
	return KafkaPublisher{
		writer:  writer,
		newUUID: uuid.NewString,
	}
}

func (p KafkaPublisher) PublishWithdrawal(ctx context.Context, withdrawal entity.Withdrawal) error {
	return p.publishWithdrawals(ctx, withdrawal)
}

// publishWithdrawals пишет события одним батчем, ключ сообщения
// идентификатор транзакции.
func (p KafkaPublisher) publishWithdrawals(ctx context.Context, withdrawals ...entity.Withdrawal) error {
	messages, err := lox.MapErr(withdrawals, p.newMessage)
	if err != nil {
		return fmt.Errorf("newMessage: %w", err)
	}

	if err = p.writer.WriteMessages(ctx, messages...); err != nil {
		return domain.WrapError(
			fmt.Errorf("writer.WriteMessages: %w", err),
			domain.KindUpstream,
			errcodes.WithdrawalEventNotPublished,
			"Событие о выводе средств не опубликовано",
		)
	}

	for _, withdrawal := range withdrawals {
		logger(ctx).Info(
			"withdrawal event published",
			slog.String(logx.FieldTransactionID, withdrawal.TransactionID),
		)
	}

	return nil
}

func (p KafkaPublisher) newMessage(withdrawal entity.Withdrawal) (kafka.Message, error) {
	value, err := json.Marshal(newWithdrawalEvent(p.newUUID(), withdrawal))
	if err != nil {
		return kafka.Message{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return kafka.Message{ //nolint:exhaustruct
		Key:   []byte(withdrawal.TransactionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(EventTypeWithdrawalRequested)},
		},
		Time: withdrawal.CreatedAt,
	}, nil
}

func newWithdrawalEvent(eventID string, withdrawal entity.Withdrawal) WithdrawalEvent {
	return WithdrawalEvent{
		EventID:       eventID,
		Type:          EventTypeWithdrawalRequested,
		TransactionID: withdrawal.TransactionID,
		Amount:        withdrawal.Amount,
		Status:        withdrawal.Status,
		Bank:          withdrawal.BankCode.String(),
		Method:        withdrawal.Method.String(),
		AccountTail:   accountTail(withdrawal.Account),
		Sender:        withdrawal.Sender,
		CreatedAt:     withdrawal.CreatedAt,
	}
}

func accountTail(account string) string {
	runes := []rune(account)
	if len(runes) <= visibleAccount {
		return account
	}

	return string(runes[len(runes)-visibleAccount:])
}
