package internal

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
)

// AppError carries the HTTP status a service failure maps to. Handlers
// translate it at the boundary; services never see status codes otherwise.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(status int, msg string) *AppError {
	return &AppError{Status: status, Message: msg}
}

func ValidationError(msg string) *AppError {
	return &AppError{Status: 400, Message: msg, Err: ErrValidation}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Status: 404, Message: msg, Err: ErrNotFound}
}

// StorageError keeps the backend failure for logging but exposes only a
// generic message to the caller.
func StorageError(msg string, err error) *AppError {
	return &AppError{Status: 500, Message: msg, Err: errors.Join(ErrStorage, err)}
}
