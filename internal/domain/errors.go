package domain

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
)

// Kind классифицирует доменную ошибку для транспорта.
type Kind int

const (
	KindInternal Kind = iota
	KindUpstream
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Kind    Kind
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// HTTPStatus сообщает транспорту код ответа для данного вида ошибки.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode возвращает код для тела ответа.
func (e *AppError) ErrorCode() string {
	return e.Code.String()
}

// Description возвращает сообщение для клиента без внутренней причины.
func (e *AppError) Description() string {
	return e.Message
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, kind Kind, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		cause:   err,
	}
}
