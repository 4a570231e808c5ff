package response

import "net/http"

// 错误类别，对应稳定的 HTTP 状态码
const (
	TypeUnauthorized = "Unauthorized"
	TypeForbidden    = "Forbidden"
	TypeNotFound     = "NotFound"
	TypeConflict     = "Conflict"
	TypeValidation   = "Validation"
	TypeInternal     = "Internal"
)

type APIError struct {
	Status int
	Type   string
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

func NewError(status int, errType, msg string) *APIError {
	return &APIError{
		Status: status,
		Type:   errType,
		Msg:    msg,
	}
}

func Unauthorized(msg string) *APIError {
	return NewError(http.StatusUnauthorized, TypeUnauthorized, msg)
}

func Forbidden(msg string) *APIError {
	return NewError(http.StatusForbidden, TypeForbidden, msg)
}

func NotFound(msg string) *APIError {
	return NewError(http.StatusNotFound, TypeNotFound, msg)
}

func Validation(msg string) *APIError {
	return NewError(http.StatusBadRequest, TypeValidation, msg)
}

func Conflict(msg string) *APIError {
	return NewError(http.StatusConflict, TypeConflict, msg)
}
