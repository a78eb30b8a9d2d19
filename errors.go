package cardanomcp

import (
	"errors"
	"fmt"
)

// Error codes classify failures in a machine-readable way. Fetch and parse
// codes mirror the pipeline's error taxonomy; general codes cover everything
// else.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"

	// Fetch errors.
	ENETWORK          = "network"
	ETIMEOUT          = "timeout"
	EHTTPSTATUS       = "http_status"
	EEMPTYCONTENT     = "empty_content"
	EUNEXPECTEDSTATUS = "unexpected_status"

	// Markup validation and parse errors.
	EMALFORMEDTAG     = "malformed_tag"
	EUNSUPPORTEDTAG   = "unsupported_tag"
	EUNMATCHEDCLOSING = "unmatched_closing_tag"
	EUNCLOSEDTAGS     = "unclosed_tags"
	ENOTAGS           = "no_tags"
	ENOHEADINGS       = "no_headings"
)

// Error represents a module error with a machine-readable code, a
// human-readable message, and an optional underlying cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf constructs an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an *Error anywhere in
// its chain. Returns empty string for nil and EINTERNAL for other errors.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if it is an *Error
// anywhere in its chain. Returns empty string for nil and the raw error
// text for other errors.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
