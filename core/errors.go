package core

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the errors of box construction, layout and update.
type ErrorCode int

// Error codes. A code of zero means no error.
const (
	EMISSING ErrorCode = iota + 1 // a box lacks a collaborator, e.g. a text box its font
	EINVALID                      // a value is out of range, e.g. a negative size
	EFOREIGN                      // an error not raised by this module
)

func (c ErrorCode) String() string {
	switch c {
	case 0:
		return "ok"
	case EMISSING:
		return "missing"
	case EINVALID:
		return "invalid"
	}
	return "foreign"
}

// decalError carries an error code and a description of the offending box
// or value.
type decalError struct {
	cause error // may be nil
	code  ErrorCode
	msg   string
}

func (e decalError) Unwrap() error {
	return e.cause
}

func (e decalError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.code, e.msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.cause)
}

// Error creates an error with an error code and a description.
func Error(code ErrorCode, format string, v ...interface{}) error {
	return decalError{code: code, msg: fmt.Sprintf(format, v...)}
}

// WrapError attaches an error code and a description to err, which may be nil.
func WrapError(err error, code ErrorCode, format string, v ...interface{}) error {
	return decalError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Code returns the error code of the first error in err's chain carrying one.
// It is 0 for nil and EFOREIGN for errors from outside this module.
func Code(err error) ErrorCode {
	if err == nil {
		return 0
	}
	var e decalError
	if errors.As(err, &e) {
		return e.code
	}
	return EFOREIGN
}
