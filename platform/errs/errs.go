// Package errs holds the error kinds that cross the bridge.
package errs

import (
	"errors"
	"fmt"
)

const (
	KindStore  = "store"
	KindBridge = "bridge"
	KindInput  = "input"
)

// StoreError is returned when the database engine rejects a statement.
// The engine error is kept as is.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// BridgeError is a transport level failure: unknown operation, bad arguments,
// unreachable gateway.
type BridgeError struct {
	Op  string
	Err error
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("bridge %s: %s", e.Op, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// InputError reports a value the gateway refuses to store.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError, nil stays nil
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Reason splits an input error into its field and the reason alone.
// ok is false for any other kind.
func Reason(err error) (field, reason string, ok bool) {
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		return "", "", false
	}
	return inputErr.Field, inputErr.Err.Error(), true
}

// KindOf classifies err, unknown errors are reported as store errors
func KindOf(err error) string {
	var inputErr *InputError
	var bridgeErr *BridgeError
	switch {
	case errors.As(err, &inputErr):
		return KindInput
	case errors.As(err, &bridgeErr):
		return KindBridge
	default:
		return KindStore
	}
}

// New rebuilds an error of the given kind from its wire form. For input errors
// message is the reason alone, without the field prefix.
func New(kind, op, field, message string) error {
	err := errors.New(message)
	switch kind {
	case KindInput:
		return &InputError{Field: field, Err: err}
	case KindBridge:
		return &BridgeError{Op: op, Err: err}
	default:
		return &StoreError{Op: op, Err: err}
	}
}
