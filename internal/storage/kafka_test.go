package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/domain"
	"tableside/internal/storage"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)

	event := domain.Event{
		Type:         domain.EventOrderPlaced,
		RestaurantID: "1",
		OrderID:      "o-1",
		TableNumber:  "3",
		Status:       "pending",
		Total:        25,
		Timestamp:    time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "1", string(writer.messages[0].Key))

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker down")}
	publisher := storage.NewKafkaPublisher(writer)

	err := publisher.Publish(context.Background(), domain.Event{Type: domain.EventOrderStatus})
	assert.EqualError(t, err, "broker down")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, storage.NopPublisher{}.Publish(context.Background(), domain.Event{}))
}
