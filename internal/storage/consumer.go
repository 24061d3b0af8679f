package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"tableside/internal/domain"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type EventHandler func(ctx context.Context, event domain.Event) error

// KafkaConsumer tails the event topic and hands each decoded event to a handler.
type KafkaConsumer struct {
	Reader MessageReader
	// RetryDelay is the pause after a failed read.
	RetryDelay time.Duration
}

func NewKafkaConsumer(reader MessageReader) *KafkaConsumer {
	return &KafkaConsumer{Reader: reader, RetryDelay: time.Second}
}

// Run blocks until ctx is done or the reader is closed (io.EOF). Undecodable
// messages and handler failures are logged and skipped.
func (c *KafkaConsumer) Run(ctx context.Context, handle EventHandler) error {
	zap.S().Infow("event consumer starting")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			zap.S().Warnw("read event", "error", err, "retry_in", c.RetryDelay)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.RetryDelay):
			}
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			zap.S().Warnw("decode event", "offset", message.Offset, "error", err)
			continue
		}

		if err := handle(ctx, event); err != nil {
			zap.S().Warnw("handle event", "type", event.Type, "restaurant_id", event.RestaurantID, "error", err)
		}
	}
}
