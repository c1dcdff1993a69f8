package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"track_market/internal/domain/value"
)

func TestBankCodeDisplayName(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		code value.BankCode
		name string
	}{
		{code: "sber", name: "Сбербанк"},
		{code: "tinkoff", name: "Т-Банк"},
		{code: "alfa", name: "Альфа-Банк"},
		{code: "vtb", name: "ВТБ"},
		{code: "gazprom", name: "gazprom"},
		{code: "SBER", name: "SBER"},
	}

	for _, tc := range testCases {
		rq.Equal(tc.name, tc.code.DisplayName(), tc.code)
	}
}

func TestPayoutMethodDisplay(t *testing.T) {
	rq := require.New(t)

	rq.Equal("номер телефона", value.PayoutMethodPhone.Display())
	rq.Equal("номер карты", value.PayoutMethodCard.Display())
	rq.Equal("номер карты", value.PayoutMethod("").Display())
	rq.Equal("номер карты", value.PayoutMethod("crypto").Display())
}
