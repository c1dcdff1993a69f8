package sale_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"track_market/internal/domain"
	"track_market/internal/domain/entity"
	"track_market/internal/domain/service/sale"
)

type putCall struct {
	key         string
	body        []byte
	contentType string
	hasDeadline bool
}

type fakeStorage struct {
	err   error
	calls []putCall
}

func (f *fakeStorage) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, hasDeadline := ctx.Deadline()

	f.calls = append(f.calls, putCall{key: key, body: body, contentType: contentType, hasDeadline: hasDeadline})

	return f.err
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.example.com/projects/KEY/bucket/" + key
}

//nolint:gochecknoglobals
var soldAt = time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)

func newService(storage sale.ObjectStorage) *sale.Service {
	return sale.NewService(storage, time.Second).
		WithClock(func() time.Time { return soldAt.In(time.FixedZone("MSK", 3*60*60)) })
}

func TestSell(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		order      sale.Order
		storageErr error
		putBody    []byte
		putCalls   int
		assetURL   *string
	}{
		{
			name: "Stored",
			order: sale.Order{
				RequestID: "req1",
				FileName:  "beat.mp3",
				Price:     decimal.NewFromInt(8000),
				AudioData: "SUQz", // "ID3"
			},
			putBody:  []byte("ID3"),
			putCalls: 1,
			assetURL: ptr("https://cdn.example.com/projects/KEY/bucket/tracks/track_req1/beat.mp3"),
		},
		{
			name: "Unpadded base64",
			order: sale.Order{
				RequestID: "req2",
				FileName:  "beat.mp3",
				Price:     decimal.NewFromInt(1),
				AudioData: "SUQzBA",
			},
			putBody:  []byte{'I', 'D', '3', 4},
			putCalls: 1,
			assetURL: ptr("https://cdn.example.com/projects/KEY/bucket/tracks/track_req2/beat.mp3"),
		},
		{
			name: "Empty audio still uploads an empty object",
			order: sale.Order{
				RequestID: "req3",
				FileName:  "empty.mp3",
				Price:     decimal.Zero,
			},
			putBody:  []byte{},
			putCalls: 1,
			assetURL: ptr("https://cdn.example.com/projects/KEY/bucket/tracks/track_req3/empty.mp3"),
		},
		{
			name: "Storage failure degrades to null asset",
			order: sale.Order{
				RequestID: "req4",
				FileName:  "beat.mp3",
				Price:     decimal.NewFromInt(5000),
				AudioData: "SUQz",
			},
			storageErr: errors.New("connection refused"),
			putBody:    []byte("ID3"),
			putCalls:   1,
			assetURL:   nil,
		},
		{
			name: "Broken base64 degrades without touching storage",
			order: sale.Order{
				RequestID: "req5",
				FileName:  "beat.mp3",
				Price:     decimal.NewFromInt(5000),
				AudioData: "not base64!",
			},
			putCalls: 0,
			assetURL: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			storage := &fakeStorage{err: tc.storageErr}

			record, err := newService(storage).Sell(context.Background(), tc.order)
			rq.NoError(err)

			rq.Equal("track_"+tc.order.RequestID, record.TrackID)
			rq.Equal(tc.order.FileName, record.FileName)
			rq.True(tc.order.Price.Equal(record.Price))
			rq.Equal(entity.SaleStatusActive, record.Status)
			rq.Equal(tc.assetURL, record.AssetURL)
			rq.Equal(soldAt, record.SoldAt)
			rq.Equal(time.UTC, record.SoldAt.Location())

			rq.Len(storage.calls, tc.putCalls)

			if tc.putCalls > 0 {
				call := storage.calls[0]

				rq.Equal("tracks/track_"+tc.order.RequestID+"/"+tc.order.FileName, call.key)
				rq.Equal(tc.putBody, call.body)
				rq.Equal("audio/mpeg", call.contentType)
				rq.True(call.hasDeadline)
			}
		})
	}
}

func TestSellMessage(t *testing.T) {
	rq := require.New(t)

	record, err := newService(&fakeStorage{}).Sell(context.Background(), sale.Order{
		RequestID: "req",
		FileName:  "Night Drive.wav",
		Price:     decimal.RequireFromString("7500.50"),
	})
	rq.NoError(err)

	rq.Equal(`Трек "Night Drive.wav" выставлен на продажу за 7500.5 ₽`, record.Message)
}

func TestSellFailOnStorageError(t *testing.T) {
	rq := require.New(t)

	t.Run("Storage failure is an upstream error", func(*testing.T) {
		service := newService(&fakeStorage{err: errors.New("timeout")}).WithFailOnStorageError(true)

		_, err := service.Sell(context.Background(), sale.Order{RequestID: "r", FileName: "a.mp3", AudioData: "SUQz"})
		rq.Error(err)

		var appErr *domain.AppError
		rq.ErrorAs(err, &appErr)
		rq.Equal(domain.KindUpstream, appErr.Kind)
		rq.Equal(http.StatusBadGateway, appErr.HTTPStatus())
	})

	t.Run("Broken payload is a validation error", func(*testing.T) {
		service := newService(&fakeStorage{}).WithFailOnStorageError(true)

		_, err := service.Sell(context.Background(), sale.Order{RequestID: "r", FileName: "a.mp3", AudioData: "%%%"})
		rq.Error(err)
		rq.True(failure.IsInvalidArgumentError(err))
	})
}

func TestObjectKey(t *testing.T) {
	require.Equal(t, "tracks/track_abc/song.mp3", sale.ObjectKey("track_abc", "song.mp3"))
}

func ptr(s string) *string {
	return &s
}
