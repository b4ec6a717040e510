package e

import (
	"errors"
	"net/http"
)

// AppError is a domain failure carrying the business code and the HTTP status
// it maps to at the transport boundary. Services return these; handlers never
// invent status codes themselves.
type AppError struct {
	Code    int
	Status  int
	Message string
}

func (ae *AppError) Error() string {
	return ae.Message
}

func NotFound(code int, msg string) *AppError {
	if msg == "" {
		msg = GetMsg(code)
	}
	return &AppError{Code: code, Status: http.StatusNotFound, Message: msg}
}

func InvalidArgument(msg string) *AppError {
	if msg == "" {
		msg = GetMsg(INVALID_PARAMS)
	}
	return &AppError{Code: INVALID_PARAMS, Status: http.StatusBadRequest, Message: msg}
}

func InvalidCredentials(code int) *AppError {
	return &AppError{Code: code, Status: http.StatusBadRequest, Message: GetMsg(code)}
}

func Conflict(code int) *AppError {
	return &AppError{Code: code, Status: http.StatusConflict, Message: GetMsg(code)}
}

func Internal(err error) *AppError {
	msg := GetMsg(ERROR)
	if err != nil {
		// Raw failure messages are echoed to callers.
		msg = err.Error()
	}
	return &AppError{Code: ERROR, Status: http.StatusInternalServerError, Message: msg}
}

// AsAppError unwraps err into an *AppError, treating anything unrecognized as
// an internal failure.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
