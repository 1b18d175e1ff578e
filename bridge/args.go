package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/memo-api/platform/errs"
)

// Args are the positional arguments of a call, each one still json encoded
type Args []json.RawMessage

// NewArgs encodes values as positional arguments
func NewArgs(values ...any) (Args, error) {
	args := make(Args, len(values))
	for i, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, &errs.BridgeError{Err: fmt.Errorf("encode argument %d: %w", i, err)}
		}
		args[i] = raw
	}
	return args, nil
}

// Expect fails unless exactly n arguments were sent
func (a Args) Expect(n int) error {
	if len(a) != n {
		return &errs.BridgeError{Err: fmt.Errorf("expected %d arguments, got %d", n, len(a))}
	}
	return nil
}

func (a Args) Int64(i int) (int64, error) {
	var v int64
	if err := a.decode(i, &v); err != nil {
		return 0, err
	}
	return v, nil
}

func (a Args) String(i int) (string, error) {
	var v string
	if err := a.decode(i, &v); err != nil {
		return "", err
	}
	return v, nil
}

func (a Args) decode(i int, v any) error {
	if i >= len(a) {
		return &errs.BridgeError{Err: fmt.Errorf("missing argument %d", i)}
	}
	if err := json.Unmarshal(a[i], v); err != nil {
		return &errs.BridgeError{Err: fmt.Errorf("argument %d: %w", i, err)}
	}
	return nil
}
