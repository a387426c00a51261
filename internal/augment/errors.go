package augment

import (
	"errors"
	"fmt"
)

// Failure kinds, usable with errors.Is on any error returned by Augment.
var (
	ErrInvalidTarget     = errors.New("invalid target lexicon")
	ErrFetchFailed       = errors.New("corpus fetch failed")
	ErrCorpusUnreadable  = errors.New("corpus unreadable")
	ErrLexiconUnreadable = errors.New("lexicon unreadable")
	ErrLexiconUnwritable = errors.New("lexicon unwritable")
)

// ErrorCode identifies why an augmentation run failed.
type ErrorCode string

const (
	ErrorCodeInvalidTarget     ErrorCode = "INVALID_TARGET"
	ErrorCodeFetchFailed       ErrorCode = "FETCH_FAILED"
	ErrorCodeCorpusUnreadable  ErrorCode = "CORPUS_UNREADABLE"
	ErrorCodeLexiconUnreadable ErrorCode = "LEXICON_UNREADABLE"
	ErrorCodeLexiconUnwritable ErrorCode = "LEXICON_UNWRITABLE"
)

var codeSentinels = map[ErrorCode]error{
	ErrorCodeInvalidTarget:     ErrInvalidTarget,
	ErrorCodeFetchFailed:       ErrFetchFailed,
	ErrorCodeCorpusUnreadable:  ErrCorpusUnreadable,
	ErrorCodeLexiconUnreadable: ErrLexiconUnreadable,
	ErrorCodeLexiconUnwritable: ErrLexiconUnwritable,
}

// Error is an augmentation failure with the run it belongs to.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// NewError creates an Error.
func NewError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds a key/value pair to the error.
func (e *Error) WithContext(key string, value interface{}) *Error {
	e.Context[key] = value
	return e
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes both the cause and the sentinel for e.Code.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := codeSentinels[e.Code]; ok {
		errs = append(errs, sentinel)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// IsRetryable reports whether running again may succeed without any change
// on the caller's side.
func (e *Error) IsRetryable() bool {
	return e.Code == ErrorCodeFetchFailed
}
