package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"track_market/internal/domain/value"
)

const WithdrawalStatusPending = "pending"

// Withdrawal заявка на вывод средств. Остаётся в статусе pending: перевод
// не выполняется.
type Withdrawal struct {
	TransactionID string
	Amount        decimal.Decimal
	Status        string
	BankCode      value.BankCode
	Method        value.PayoutMethod
	Account       string
	Sender        string
	EstimatedTime time.Duration
	CreatedAt     time.Time
	Message       string
}
