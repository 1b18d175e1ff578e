package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ribgsilva/memo-api/platform/errs"
)

// Client issues calls and returns the json encoded result
type Client interface {
	Call(ctx context.Context, op string, args ...any) (json.RawMessage, error)
}

// LocalClient calls a Dispatcher in the same process. Arguments and results
// still go through json so both sides see what a remote call would carry.
type LocalClient struct {
	Dispatcher *Dispatcher
}

func (c LocalClient) Call(ctx context.Context, op string, args ...any) (json.RawMessage, error) {
	encoded, err := NewArgs(args...)
	if err != nil {
		return nil, err
	}

	result, err := c.Dispatcher.Invoke(ctx, op, encoded)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, &errs.BridgeError{Op: op, Err: fmt.Errorf("encode result: %w", err)}
	}
	return raw, nil
}
