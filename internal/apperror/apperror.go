// Package apperror defines the error taxonomy shared by the service and
// HTTP layers. Services return these; handlers map them to status codes.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpload       = errors.New("upload failed")
	ErrPersistence  = errors.New("persistence failed")
	ErrNotFound     = errors.New("not found")
)

// AppError pairs a sentinel error with a client-safe message.
type AppError struct {
	Err     error  // one of the sentinel errors above
	Message string // human-readable, safe to return to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationFailed(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

func UploadFailed(message string) *AppError {
	return &AppError{Err: ErrUpload, Message: message}
}

func PersistenceFailed(message string) *AppError {
	return &AppError{Err: ErrPersistence, Message: message}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}
