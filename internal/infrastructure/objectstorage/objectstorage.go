package objectstorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"

	"track_market/pkg/contextx"
	"track_market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// bucketClient подмножество *minio.Client, которое нужно хранилищу.
type bucketClient interface {
	PutObject(
		ctx context.Context,
		bucketName, objectName string,
		reader io.Reader,
		objectSize int64,
		opts minio.PutObjectOptions,
	) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

type Options struct {
	Bucket      string
	CDNBaseURL  string
	AccessKeyID string
}

// Storage пишет файлы треков в S3-совместимый бакет и строит публичные
// ссылки через CDN.
type Storage struct {
	client  bucketClient
	options Options
}

func NewStorage(client bucketClient, options Options) Storage {
	options.CDNBaseURL = strings.TrimRight(options.CDNBaseURL, "/")

	return Storage{
		client:  client,
		options: options,
	}
}

func (s Storage) Put(ctx context.Context, key string, body []byte, contentType string) error {
	info, err := s.client.PutObject(
		ctx,
		s.options.Bucket,
		key,
		bytes.NewReader(body),
		int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType}, //nolint:exhaustruct
	)
	if err != nil {
		return fmt.Errorf("client.PutObject: %w", err)
	}

	logger(ctx).Debug(
		"object stored",
		slog.String(logx.FieldBucket, s.options.Bucket),
		slog.String(logx.FieldObjectKey, key),
		slog.String("etag", info.ETag),
	)

	return nil
}

// PublicURL: <cdn>/<access key id>/bucket/<key>, каждый сегмент ключа
// экранируется отдельно.
func (s Storage) PublicURL(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return s.options.CDNBaseURL + "/" + s.options.AccessKeyID + "/bucket/" + strings.Join(segments, "/")
}

// Ready проверяет доступность бакета для /ready.
func (s Storage) Ready(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.options.Bucket)
	if err != nil {
		return fmt.Errorf("client.BucketExists: %w", err)
	}

	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.options.Bucket)
	}

	return nil
}
