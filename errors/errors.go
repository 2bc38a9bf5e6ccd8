package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Messages returned to callers in the {"error": ...} body.
const (
	MsgInvalidURL       = "Invalid or missing YouTube URL"
	MsgMissingVideoID   = "Unable to extract video ID"
	MsgInternal         = "Internal Server Error"
	MsgMethodNotAllowed = "Method Not Allowed"
)

var (
	ErrInvalidURL     = &AppError{Code: http.StatusBadRequest, Message: MsgInvalidURL, Op: "validation"}
	ErrMissingVideoID = &AppError{Code: http.StatusBadRequest, Message: MsgMissingVideoID, Op: "validation"}
)

type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Op      string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on status code and message so wrapped copies of the sentinels
// still compare equal.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

func MethodNotAllowed(op string) *AppError {
	return &AppError{
		Code:    http.StatusMethodNotAllowed,
		Message: MsgMethodNotAllowed,
		Op:      op,
	}
}

func Internal(op string, err error, message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Op:      op,
		Err:     err,
	}
}

// As reports whether err carries an *AppError and returns it.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsClientError reports whether err should be surfaced to the caller verbatim.
func IsClientError(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Code >= 400 && appErr.Code < 500
}
