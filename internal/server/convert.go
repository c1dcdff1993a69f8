package server

import (
	"math"

	"track_market/internal/domain/entity"
	"track_market/internal/domain/service/sale"
	"track_market/internal/domain/service/withdrawal"
	"track_market/internal/domain/value"
	"track_market/pkg/contextx"
	"track_market/pkg/rest"
)

const (
	defaultEstimatorFileName = "track.mp3"
	defaultEvaluatorFileName = "unknown.mp3"
	defaultSaleFileName      = "track.mp3"
)

func newDomainTrack(request rest.EstimationRequest, defaultFileName string) entity.Track {
	fileName := defaultFileName
	if request.FileName != nil {
		fileName = *request.FileName
	}

	return entity.Track{
		FileName: fileName,
		FileSize: truncateFileSize(request.FileSize),
	}
}

func truncateFileSize(size float64) int64 {
	switch {
	case size >= math.MaxInt64:
		return math.MaxInt64
	case size <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(size)
	}
}

func newRESTAnalyzeTrack(estimation entity.Estimation) rest.AnalyzeTrackResponse {
	return rest.AnalyzeTrackResponse{
		EstimatedPrice: estimation.Price,
		FileName:       estimation.Track.FileName,
		FileSize:       estimation.Track.FileSize,
		Analysis: rest.TrackAnalysis{
			Quality:        estimation.Quality,
			Genre:          estimation.Genre,
			Recommendation: estimation.Recommendation,
		},
	}
}

func newRESTEvaluateTrack(evaluation entity.Evaluation) rest.EvaluateTrackResponse {
	return rest.EvaluateTrackResponse{
		EstimatedPrice: evaluation.Price,
		Currency:       evaluation.Currency,
		Confidence:     evaluation.Confidence,
		Analysis: rest.TrackEvaluationAnalysis{
			Quality:         evaluation.Quality,
			Genre:           evaluation.Genre,
			Duration:        evaluation.Duration,
			PotentialDemand: evaluation.PotentialDemand,
		},
		Recommendation: evaluation.Recommendation,
	}
}

func newDomainSaleOrder(requestID contextx.RequestID, request rest.SellTrackRequest) sale.Order {
	fileName := defaultSaleFileName
	if request.FileName != nil {
		fileName = *request.FileName
	}

	return sale.Order{
		RequestID: requestID.String(),
		FileName:  fileName,
		Price:     request.Price,
		AudioData: request.AudioData,
	}
}

func newRESTSale(record entity.Sale) rest.SellTrackResponse {
	return rest.SellTrackResponse{
		TrackID:  record.TrackID,
		FileName: record.FileName,
		Price:    record.Price.InexactFloat64(),
		Status:   record.Status,
		AssetURL: record.AssetURL,
		CDNURL:   record.AssetURL,
		SoldAt:   record.SoldAt,
		Message:  record.Message,
	}
}

func newDomainWithdrawalRequest(requestID contextx.RequestID, request rest.WithdrawalRequest) withdrawal.Request {
	method := value.PayoutMethodCard
	if request.Method != "" {
		method = value.PayoutMethod(request.Method)
	}

	return withdrawal.Request{
		RequestID: requestID.String(),
		Amount:    request.Amount,
		Method:    method,
		Bank:      value.BankCode(request.Bank),
		Account:   request.Account,
	}
}

func newRESTWithdrawal(record entity.Withdrawal) rest.WithdrawalResponse {
	return rest.WithdrawalResponse{
		TransactionID: record.TransactionID,
		Amount:        record.Amount.InexactFloat64(),
		Status:        record.Status,
		Bank:          record.BankCode.DisplayName(),
		Method:        record.Method.Display(),
		Account:       record.Account,
		Sender:        record.Sender,
		EstimatedTime: int(record.EstimatedTime.Seconds()),
		CreatedAt:     record.CreatedAt,
		Message:       record.Message,
	}
}
