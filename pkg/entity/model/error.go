package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error codes
const (
	DBError           = "DB_ERROR"
	InvalidParamError = "INVALID_PARAM_ERROR"
	InternalError     = "INTERNAL_ERROR"
)

// Error is the error value passed between layers. Code decides how the HTTP layer reports it.
type Error struct {
	Code    string
	Message string
	Param   interface{}
	err     error
}

func (e *Error) Error() string {
	if e.err == nil || e.err.Error() == e.Message {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.err)
}

func (e *Error) Unwrap() error { return e.err }

func newError(code, message string, err error, param interface{}) error {
	if err == nil {
		err = errors.New(message)
	} else {
		err = errors.WithStack(err)
	}
	return &Error{Code: code, Message: message, Param: param, err: err}
}

// NewDBError wraps a failure coming from the store.
func NewDBError(e error) error {
	return newError(DBError, "database error", e, nil)
}

// NewInvalidParamError reports a caller contract violation.
func NewInvalidParamError(e error, param interface{}) error {
	msg := "invalid parameter"
	if e != nil {
		msg = e.Error()
		e = nil
	}
	return newError(InvalidParamError, msg, e, param)
}

// Code returns the code of err, or InternalError when err is not an *Error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return InternalError
}
