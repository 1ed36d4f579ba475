package srvcerror

import (
	"errors"
	"log/slog"
	"net/http"
)

// Error is an error that is safe to show to the user. The wrapped debug
// error is only logged.
type Error struct {
	errorCode  string
	msgToUser  string
	dbgInfoErr error

	httpStatus int
}

func (e *Error) Error() string {
	return e.msgToUser
}

func (e *Error) ErrorCode() string {
	return e.errorCode
}

func (e *Error) DebugInfo() error {
	return e.dbgInfoErr
}

func (e *Error) Unwrap() error {
	return e.dbgInfoErr
}

func (e *Error) SetDebug(err error) *Error {
	e.dbgInfoErr = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.httpStatus
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.httpStatus = code
	return e
}

// LogValue logs the code, status and debug cause instead of only the user
// message.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.errorCode),
		slog.Int("status", e.HttpStatusCode()),
		slog.String("message", e.msgToUser),
	}
	if e.dbgInfoErr != nil {
		attrs = append(attrs, slog.String("debug", e.dbgInfoErr.Error()))
	}
	return slog.GroupValue(attrs...)
}

func New(errorCode string, msgToUser string) *Error {
	return &Error{
		errorCode: errorCode,
		msgToUser: msgToUser,
	}
}

// HasCode reports whether err wraps a service error with the given code.
func HasCode(err error, code string) bool {
	var se *Error
	return errors.As(err, &se) && se.errorCode == code
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
