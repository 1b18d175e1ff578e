// Package calls runs gateway operations delivered through a queue. Each message is a
// bridge.Message; results are dropped, failures are logged and the message is acked anyway.
package calls

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ribgsilva/memo-api/bridge"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consume receives until ctx is canceled, running at most maxWorkers messages at a time
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int, d *bridge.Dispatcher, logger *zap.SugaredLogger) error {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			handle(ctx, m.Body, d, logger)
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func handle(ctx context.Context, body []byte, d *bridge.Dispatcher, logger *zap.SugaredLogger) {
	var m bridge.Message
	if err := json.Unmarshal(body, &m); err != nil {
		logger.Error("failed to parse body: ", err)
		return
	}
	if m.Type == "" {
		logger.Error("message without operation type")
		return
	}

	if _, err := d.Invoke(ctx, m.Type, m.Args); err != nil {
		logger.Errorf("failed to run %s with %d args: err: %s", m.Type, len(m.Args), err)
	}
}
