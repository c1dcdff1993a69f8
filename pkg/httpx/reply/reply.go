package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"track_market/pkg/contextx"
	"track_market/pkg/errcodes"
	"track_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// errorResponse keeps the "error" key the marketplace frontend reads.
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

func (e *errorResponse) WithDefaultMessage(message string) {
	if e.Error == "" {
		e.Error = message
	}
}

// kindedError is implemented by domain errors that know their own status.
type kindedError interface {
	error
	HTTPStatus() int
	ErrorCode() string
	Description() string
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func MethodNotAllowed(ctx context.Context, w http.ResponseWriter) {
	JSON(ctx, w, http.StatusMethodNotAllowed, errorResponse{
		Error:     "Method not allowed",
		Code:      errcodes.MethodNotAllowed.String(),
		SupportID: supportID(ctx),
	})
}

func NotFound(ctx context.Context, w http.ResponseWriter) {
	JSON(ctx, w, http.StatusNotFound, errorResponse{
		Error:     "Not found",
		Code:      errcodes.NotFound.String(),
		SupportID: supportID(ctx),
	})
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	var kinded kindedError
	if errors.As(err, &kinded) {
		response := errorResponse{
			Error:     kinded.Description(),
			Code:      kinded.ErrorCode(),
			SupportID: supportID(ctx),
		}
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, kinded.HTTPStatus(), response)

		return
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		JSON(ctx, w, http.StatusRequestEntityTooLarge, errorResponse{
			Error:     "Request body too large",
			Code:      errcodes.RequestTooLarge.String(),
			SupportID: supportID(ctx),
		})

		return
	}

	response := errorResponse{
		Error:     failure.Description(err),
		Code:      failure.Code(err).String(),
		SupportID: supportID(ctx),
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		response.WithDefaultMessage("Invalid request")
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case failure.IsUnprocessableEntityError(err):
		JSON(ctx, w, http.StatusUnprocessableEntity, response)
	case errors.Is(err, context.DeadlineExceeded):
		response.Code = errcodes.TimeoutExceeded.String()
		response.WithDefaultMessage("Timeout exceeded")
		JSON(ctx, w, http.StatusGatewayTimeout, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		response.WithDefaultMessage(err.Error())
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
