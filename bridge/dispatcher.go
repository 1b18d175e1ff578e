package bridge

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ribgsilva/memo-api/platform/errs"
	"go.uber.org/zap"
)

// ErrUnknownOperation is wrapped in the BridgeError returned for unregistered names
var ErrUnknownOperation = errors.New("unknown operation")

// Handler runs one operation
type Handler func(ctx context.Context, args Args) (any, error)

// Dispatcher routes calls to the handler registered for their operation name
type Dispatcher struct {
	log *zap.SugaredLogger

	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewDispatcher(log *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		log:      log,
		handlers: make(map[string]Handler),
	}
}

// Handle registers h for op, replacing any previous handler
func (d *Dispatcher) Handle(op string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[op] = h
}

// Operations lists the registered operation names, sorted
func (d *Dispatcher) Operations() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ops := make([]string, 0, len(d.handlers))
	for op := range d.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Invoke runs op. Errors from the handler come back unchanged, except bridge
// errors which get the operation name filled in.
func (d *Dispatcher) Invoke(ctx context.Context, op string, args Args) (any, error) {
	d.mu.RLock()
	h, ok := d.handlers[op]
	d.mu.RUnlock()
	if !ok {
		return nil, &errs.BridgeError{Op: op, Err: ErrUnknownOperation}
	}

	result, err := h(ctx, args)
	if err != nil {
		var bridgeErr *errs.BridgeError
		if errors.As(err, &bridgeErr) && bridgeErr.Op == "" {
			bridgeErr.Op = op
		}
		d.log.Errorw("bridge", "op", op, "kind", errs.KindOf(err), "ERROR", err)
		return nil, err
	}
	return result, nil
}
