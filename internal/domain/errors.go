package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConnection        = errors.New("connection error")
	ErrQuery             = errors.New("query error")
	ErrInvalidTimeFormat = errors.New("invalid time format")
)

// StoreError ties a failure of the record store to one of ErrConnection
// or ErrQuery. errors.Is matches both the kind and the underlying cause.
type StoreError struct {
	Kind error
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ConnectionError(op string, err error) error {
	return &StoreError{Kind: ErrConnection, Op: op, Err: err}
}

func QueryError(op string, err error) error {
	return &StoreError{Kind: ErrQuery, Op: op, Err: err}
}

// KindOf returns the sentinel err belongs to: ErrConnection, ErrQuery or
// ErrInvalidTimeFormat. It returns nil for nil and for errors outside
// the taxonomy.
func KindOf(err error) error {
	for _, kind := range []error{ErrConnection, ErrQuery, ErrInvalidTimeFormat} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
