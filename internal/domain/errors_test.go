package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"track_market/internal/domain"
	"track_market/pkg/errcodes"
)

func TestAppErrorHTTPStatus(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		kind   domain.Kind
		status int
	}{
		{kind: domain.KindInternal, status: http.StatusInternalServerError},
		{kind: domain.KindUpstream, status: http.StatusBadGateway},
	}

	for _, tc := range testCases {
		rq.Equal(tc.status, domain.WrapError(errors.New("cause"), tc.kind, errcodes.InternalServerError, "msg").HTTPStatus())
	}
}

func TestWrapError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("sell: %w", domain.WrapError(
		cause,
		domain.KindUpstream,
		errcodes.StorageUnavailable,
		"Не удалось сохранить файл трека",
	))

	rq.ErrorIs(err, cause)
	rq.EqualError(err, "sell: Не удалось сохранить файл трека: dial tcp: connection refused")

	var appErr *domain.AppError

	rq.ErrorAs(err, &appErr)
	rq.Equal("Не удалось сохранить файл трека", appErr.Description())
	rq.Equal("StorageUnavailable", appErr.ErrorCode())
	rq.Equal(errcodes.StorageUnavailable, appErr.Code)

	rq.False(errors.As(cause, &appErr))
}
