package extractr

import (
	"errors"
	"fmt"
)

// Error codes classify extraction failures. Only a subset of
// PAGE_LOAD_FAILED cases (transient network errors) are ever marked
// recoverable; all other codes are terminal.
const (
	EINVALIDURL       = "INVALID_URL"
	EINVALIDTEMPLATE  = "INVALID_TEMPLATE"
	EUNSAFEREGEX      = "UNSAFE_REGEX"
	EPAGELOADFAILED   = "PAGE_LOAD_FAILED"
	ESELECTORTIMEOUT  = "SELECTOR_TIMEOUT"
	EOVERALLTIMEOUT   = "OVERALL_TIMEOUT"
	EEXTRACTIONFAILED = "EXTRACTION_FAILED"
	ECANCELLED        = "CANCELLED"
	ENOTFOUND         = "TEMPLATE_NOT_FOUND"
	EINTERNAL         = "INTERNAL"
)

// Error represents an application error with a machine-readable code,
// a human-readable message, and a recoverability flag that tells the
// orchestrator whether retrying is worthwhile.
type Error struct {
	Code        string
	Message     string
	Recoverable bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf returns a terminal Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// RecoverableErrorf returns an Error marked as worth retrying.
func RecoverableErrorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:        code,
		Message:     fmt.Sprintf(format, args...),
		Recoverable: true,
	}
}

// ErrorCode returns the code of err, EINTERNAL for non-application
// errors, and the empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of err, a generic message for
// non-application errors, and the empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// IsRecoverable reports whether err is an application error marked
// recoverable. Non-application errors are never recoverable.
func IsRecoverable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Recoverable
	}
	return false
}
