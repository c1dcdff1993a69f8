package connectors

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/samber/lo"

	"track_market/pkg/httpx"
	"track_market/pkg/logx"
)

// ObjectStorage lazily builds an S3-compatible client. Outgoing requests go
// through httpx.LoggingRoundTripper; upload bodies are never dumped.
type ObjectStorage struct {
	value           *minio.Client
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	UseSSL          bool
	LogFieldMaxLen  int
	init            sync.Once
}

func (o *ObjectStorage) Client(ctx context.Context) *minio.Client {
	o.init.Do(func() {
		transport := lo.Must(minio.DefaultTransport(o.UseSSL))

		o.value = lo.Must(minio.New(o.Endpoint, &minio.Options{
			//nolint:exhaustruct
			Creds:  credentials.NewStaticV4(o.AccessKeyID, o.SecretAccessKey, ""),
			Secure: o.UseSSL,
			Region: o.Region,
			Transport: httpx.NewLoggingRoundTripper(
				http.RoundTripper(transport),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(o.LogFieldMaxLen),
			),
		}))

		logger(ctx).Info(
			"object storage client created",
			slog.String("endpoint", o.Endpoint),
			slog.Bool("ssl", o.UseSSL),
		)
	})

	return o.value
}
