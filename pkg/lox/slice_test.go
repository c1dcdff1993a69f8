package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"track_market/pkg/lox"
)

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	result, err := lox.MapErr([]string{"1", "2", "3"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2, 3}, result)

	result, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	rq.Error(err)
	rq.Nil(result)

	errStop := errors.New("stop")
	calls := 0

	_, err = lox.MapErr([]int{1, 2, 3}, func(int) (int, error) {
		calls++
		return 0, errStop
	})
	rq.ErrorIs(err, errStop)
	rq.Equal(1, calls)
}
