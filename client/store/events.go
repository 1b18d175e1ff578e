package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

// NotebookChanged is published each time the current notebook changes. Zero means none is selected.
// Seq grows with every change made by one NotebookStore; the subscription does not keep
// publish order, so listeners compare Seq to tell which change is the latest.
type NotebookChanged struct {
	NotebookId int64  `json:"notebook_id"`
	Seq        uint64 `json:"seq"`
}

// NewEvents returns an in-process topic with one subscription attached
func NewEvents(ackDeadline time.Duration) (*pubsub.Topic, *pubsub.Subscription) {
	topic := mempubsub.NewTopic()
	return topic, mempubsub.NewSubscription(topic, ackDeadline)
}

func publishNotebookChanged(ctx context.Context, topic *pubsub.Topic, e NotebookChanged) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := topic.Send(ctx, &pubsub.Message{Body: body}); err != nil {
		return fmt.Errorf("publish notebook changed: %w", err)
	}
	return nil
}

func decodeNotebookChanged(body []byte) (NotebookChanged, error) {
	var e NotebookChanged
	if err := json.Unmarshal(body, &e); err != nil {
		return NotebookChanged{}, fmt.Errorf("decode notebook changed: %w", err)
	}
	return e, nil
}
