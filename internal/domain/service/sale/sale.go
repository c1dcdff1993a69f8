package sale

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"

	"track_market/internal/domain"
	"track_market/internal/domain/entity"
	"track_market/internal/metrics"
	"track_market/pkg/contextx"
	"track_market/pkg/errcodes"
	"track_market/pkg/logx"
)

const (
	trackIDPrefix    = "track_"
	trackKeyPrefix   = "tracks"
	audioContentType = "audio/mpeg"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) string
}

// Order входные данные продажи. RequestID берётся из контекста запроса.
type Order struct {
	RequestID string
	FileName  string
	Price     decimal.Decimal
	AudioData string
}

type Service struct {
	storage      ObjectStorage
	writeTimeout time.Duration
	failOnError  bool
	now          func() time.Time
}

func NewService(storage ObjectStorage, writeTimeout time.Duration) *Service {
	return &Service{
		storage:      storage,
		writeTimeout: writeTimeout,
		now:          time.Now,
	}
}

// WithFailOnStorageError отключает деградацию до assetUrl=null: ошибка
// хранилища возвращается клиенту.
func (s *Service) WithFailOnStorageError(fail bool) *Service {
	s.failOnError = fail
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Sell сохраняет файл трека и возвращает запись о продаже. По умолчанию
// ошибка декодирования или записи не прерывает продажу: запись возвращается
// с пустым AssetURL.
func (s *Service) Sell(ctx context.Context, order Order) (entity.Sale, error) {
	trackID := trackIDPrefix + order.RequestID
	key := ObjectKey(trackID, order.FileName)

	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldTrackID, trackID),
		slog.String(logx.FieldObjectKey, key),
	))

	assetURL, err := s.store(ctx, key, order.AudioData)
	if err != nil {
		if s.failOnError {
			metrics.Sales.WithLabelValues(metrics.StorageFailed).Inc()
			return entity.Sale{}, err
		}

		metrics.SaleStorageFailures.Inc()
		metrics.Sales.WithLabelValues(metrics.StorageDegraded).Inc()
		logger(ctx).Error("track is on sale without stored asset", logx.Error(err))
	} else {
		metrics.Sales.WithLabelValues(metrics.StorageStored).Inc()
	}

	return entity.Sale{
		TrackID:  trackID,
		FileName: order.FileName,
		Price:    order.Price,
		Status:   entity.SaleStatusActive,
		AssetURL: assetURL,
		SoldAt:   s.now().UTC(),
		Message:  fmt.Sprintf("Трек \"%s\" выставлен на продажу за %s ₽", order.FileName, order.Price.String()),
	}, nil
}

func (s *Service) store(ctx context.Context, key, audioData string) (*string, error) {
	audio, err := decodeAudio(audioData)
	if err != nil {
		return nil, failure.NewInvalidArgumentError(
			fmt.Errorf("decodeAudio: %w", err).Error(),
			failure.WithCode(errcodes.InvalidAudioData),
			failure.WithDescription("Некорректные данные аудиофайла"),
		)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	if err = s.storage.Put(ctx, key, audio, audioContentType); err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("storage.Put: %w", err),
			domain.KindUpstream,
			errcodes.StorageUnavailable,
			"Не удалось сохранить файл трека",
		)
	}

	assetURL := s.storage.PublicURL(key)

	logger(ctx).Info("track stored", slog.Int("size", len(audio)))

	return &assetURL, nil
}

// ObjectKey раскладывает файлы по идентификатору трека: tracks/<trackID>/<fileName>.
func ObjectKey(trackID, fileName string) string {
	return trackKeyPrefix + "/" + trackID + "/" + fileName
}

// decodeAudio принимает base64 с паддингом и без. Пустая строка даёт пустой файл.
func decodeAudio(data string) ([]byte, error) {
	if data == "" {
		return []byte{}, nil
	}

	audio, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return audio, nil
	}

	audio, rawErr := base64.RawStdEncoding.DecodeString(data)
	if rawErr != nil {
		return nil, fmt.Errorf("base64.DecodeString: %w", err)
	}

	return audio, nil
}
