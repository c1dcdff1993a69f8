// Модели HTTP API маркетплейса. Денежные суммы во входящих запросах читаются
// в decimal, в ответах отдаются JSON-числами.
package rest

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimationRequest запрос оценки трека. AudioData принимается, но не
// используется. FileSize читается как JSON-число, дробная часть отбрасывается.
type EstimationRequest struct {
	FileName  *string `json:"fileName"`
	FileSize  float64 `json:"fileSize"`
	AudioData string  `json:"audioData"`
}

type TrackAnalysis struct {
	Quality        string `json:"quality"`
	Genre          string `json:"genre"`
	Recommendation string `json:"recommendation"`
}

type AnalyzeTrackResponse struct {
	EstimatedPrice int64         `json:"estimatedPrice"`
	FileName       string        `json:"fileName"`
	FileSize       int64         `json:"fileSize"`
	Analysis       TrackAnalysis `json:"analysis"`
}

type TrackEvaluationAnalysis struct {
	Quality         string `json:"quality"`
	Genre           string `json:"genre"`
	Duration        string `json:"duration"`
	PotentialDemand string `json:"potentialDemand"`
}

type EvaluateTrackResponse struct {
	EstimatedPrice int64                   `json:"estimatedPrice"`
	Currency       string                  `json:"currency"`
	Confidence     int                     `json:"confidence"`
	Analysis       TrackEvaluationAnalysis `json:"analysis"`
	Recommendation string                  `json:"recommendation"`
}

// SellTrackRequest запрос на продажу. Имя файла становится частью ключа в
// хранилище, поэтому разделители пути запрещены.
type SellTrackRequest struct {
	FileName  *string         `json:"fileName" validate:"omitnil,min=1,max=255,excludesall=/\\"`
	Price     decimal.Decimal `json:"price"`
	AudioData string          `json:"audioData"`
}

type SellTrackResponse struct {
	TrackID  string  `json:"trackId"`
	FileName string  `json:"fileName"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	AssetURL *string `json:"assetUrl"`
	// CDNURL дублирует AssetURL для клиентов старого API.
	CDNURL  *string   `json:"cdnUrl"`
	SoldAt  time.Time `json:"soldAt"`
	Message string    `json:"message"`
}

type WithdrawalRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	Bank    string          `json:"bank"`
	Account string          `json:"account"`
}

type WithdrawalResponse struct {
	TransactionID string    `json:"transactionId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Bank          string    `json:"bank"`
	Method        string    `json:"method"`
	Account       string    `json:"account"`
	Sender        string    `json:"sender"`
	EstimatedTime int       `json:"estimatedTime"`
	CreatedAt     time.Time `json:"createdAt"`
	Message       string    `json:"message"`
}

// Error Модель ошибок
type Error struct {
	// Error Сообщение об ошибке для отображения пользователю
	Error string `json:"error"`

	// Code Код ошибки
	Code string `json:"code"`

	// SupportID Идентификатор для обращения в поддержку
	SupportID string `json:"supportId"`
}
