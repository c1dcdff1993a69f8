package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	MethodNotAllowed    failure.ErrorCode = "MethodNotAllowed"
	RequestTooLarge     failure.ErrorCode = "RequestTooLarge"

	// Продажа треков
	InvalidAudioData   failure.ErrorCode = "InvalidAudioData"
	StorageUnavailable failure.ErrorCode = "StorageUnavailable"

	// Вывод средств
	InvalidWithdrawalAmount     failure.ErrorCode = "InvalidWithdrawalAmount"
	MissingWithdrawalRequisites failure.ErrorCode = "MissingWithdrawalRequisites"
	WithdrawalEventNotPublished failure.ErrorCode = "WithdrawalEventNotPublished"
)
