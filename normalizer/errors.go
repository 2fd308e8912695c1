package normalizer

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument matches InvalidArgumentError
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotNormalizable matches NotNormalizableError
	ErrNotNormalizable = errors.New("not normalizable")
)

// InvalidArgumentError is returned for values that can not be normalized or invalid configuration
type InvalidArgumentError struct {
	Message  string
	previous error
}

func (e *InvalidArgumentError) Error() string {
	if e.previous != nil {
		return e.Message + ": " + e.previous.Error()
	}
	return e.Message
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.previous
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotNormalizableError is returned when data can not be denormalized
type NotNormalizableError struct {
	Message string
	//Code forwarded from the underlying error
	Code          int
	Data          interface{}
	ExpectedTypes []string
	Path          string
	//UseMessageForUser marks message as safe to show to end users
	UseMessageForUser bool
	previous          error
}

func (e *NotNormalizableError) Error() string {
	return e.Message
}

func (e *NotNormalizableError) Unwrap() error {
	return e.previous
}

func (e *NotNormalizableError) Is(target error) bool {
	return target == ErrNotNormalizable
}

func newInvalidArgumentError(message string, previous error) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message, previous: previous}
}

func newUnexpectedDataError(message string, data interface{}, path string, useMessageForUser bool, previous error) *NotNormalizableError {
	return &NotNormalizableError{
		Message:           message,
		Code:              codeOf(previous),
		Data:              data,
		ExpectedTypes:     []string{"string"},
		Path:              path,
		UseMessageForUser: useMessageForUser,
		previous:          previous,
	}
}

// codeOf returns code of the first error in chain exposing Code() int
func codeOf(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) {
		return coder.Code()
	}
	return 0
}
