package req_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"track_market/pkg/httpx/req"
)

type testRequest struct {
	FileName string `json:"fileName" validate:"omitempty,max=8"`
	FileSize int64  `json:"fileSize"`
}

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		dest    testRequest
		invalid bool
	}{
		{
			name: "Valid body",
			body: `{"fileName":"a.mp3","fileSize":1024}`,
			dest: testRequest{FileName: "a.mp3", FileSize: 1024},
		},
		{
			name: "Empty body keeps defaults",
			body: ``,
			dest: testRequest{},
		},
		{
			name: "Empty object",
			body: `{}`,
			dest: testRequest{},
		},
		{
			name:    "Malformed JSON",
			body:    `{"fileName":`,
			invalid: true,
		},
		{
			name:    "Wrong field type",
			body:    `{"fileSize":"big"}`,
			invalid: true,
		},
		{
			name:    "Validation tag violated",
			body:    `{"fileName":"too-long-name.mp3"}`,
			invalid: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest testRequest

			err := req.Read(r, &dest)
			if tc.invalid {
				rq.Error(err)
				rq.True(failure.IsInvalidArgumentError(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.dest, dest)
		})
	}
}

func TestReadBodyOverLimit(t *testing.T) {
	rq := require.New(t)

	body := `{"fileName":"a.mp3","fileSize":1024}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Body = http.MaxBytesReader(w, r.Body, 8)

	var dest testRequest

	err := req.Read(r, &dest)
	rq.Error(err)
	rq.False(failure.IsInvalidArgumentError(err))

	var maxBytesErr *http.MaxBytesError

	rq.True(errors.As(err, &maxBytesErr))
	rq.EqualValues(8, maxBytesErr.Limit)
}
