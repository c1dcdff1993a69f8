package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const SaleStatusActive = "active"

// Sale запись о треке, выставленном на продажу. Создаётся один раз и не
// изменяется.
type Sale struct {
	TrackID  string
	FileName string
	Price    decimal.Decimal
	Status   string
	// AssetURL пустой, если файл не удалось сохранить.
	AssetURL *string
	SoldAt   time.Time
	Message  string
}
