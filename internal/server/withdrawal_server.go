package server

import (
	"context"
	"fmt"
	"net/http"

	"track_market/internal/domain/entity"
	"track_market/internal/domain/service/withdrawal"
	"track_market/pkg/contextx"
	"track_market/pkg/httpx/reply"
	"track_market/pkg/httpx/req"
	"track_market/pkg/rest"
)

type withdrawalService interface {
	Withdraw(context.Context, withdrawal.Request) (entity.Withdrawal, error)
}

type WithdrawalServer struct {
	withdrawalService withdrawalService
}

func NewWithdrawalServer(withdrawalService withdrawalService) WithdrawalServer {
	return WithdrawalServer{
		withdrawalService: withdrawalService,
	}
}

func (s WithdrawalServer) postV1Withdrawals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	requestID, err := contextx.RequestIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("contextx.RequestIDFromContext: %w", err)
	}

	var request rest.WithdrawalRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	record, err := s.withdrawalService.Withdraw(ctx, newDomainWithdrawalRequest(requestID, request))
	if err != nil {
		return fmt.Errorf("withdrawalService.Withdraw: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTWithdrawal(record))

	return nil
}
