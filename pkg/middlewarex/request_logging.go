package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"track_market/pkg/logx"
)

// Тела с такими Content-Type не попадают в лог: это файлы треков.
//
//nolint:gochecknoglobals
var undumpedContentTypes = []string{
	"multipart/form-data",
	"audio/",
	"application/octet-stream",
}

func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dump, err := httputil.DumpRequest(r, dumpBody(r))

			// Маскирование до обрезки: иначе у длинного значения теряется
			// закрывающая кавычка и шаблон не срабатывает.
			dump = sensitiveDataMasker.Mask(dump)

			if len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(dump)),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

func dumpBody(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")

	for _, prefix := range undumpedContentTypes {
		if strings.HasPrefix(contentType, prefix) {
			return false
		}
	}

	return true
}
