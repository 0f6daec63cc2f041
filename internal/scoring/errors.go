package scoring

import (
	"errors"
	"fmt"
)

// Kind identifies which precondition an Inputs value violated.
type Kind string

const (
	InvalidFloat       Kind = "InvalidFloat"
	InvalidAverageCost Kind = "InvalidAverageCost"
	InvalidWeights     Kind = "InvalidWeights"
)

var (
	ErrInvalidFloat       = errors.New("float value must be between 0 and 1")
	ErrInvalidAverageCost = errors.New("average cost must be greater than 0")
	ErrInvalidWeights     = errors.New("price weight + float weight must be greater than 0")
)

// ValidationError reports the first violated precondition.
type ValidationError struct {
	Kind  Kind
	Value float64
	err   error
}

func newValidationError(kind Kind, value float64, err error) *ValidationError {
	return &ValidationError{Kind: kind, Value: value, err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (got %v)", e.Kind, e.err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

// KindOf returns the validation kind carried by err, or "" if err is not a
// ValidationError.
func KindOf(err error) Kind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}
