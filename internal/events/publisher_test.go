package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatermillPublisher_PublishOverGoChannel(t *testing.T) {
	logger := discardLogger()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	defer pubSub.Close()

	publisher := NewPublisher(pubSub, "scholarship", logger)
	topic := publisher.Topic(ScholarshipCreated)
	assert.Equal(t, "scholarship.scholarship.created", topic)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, topic)
	require.NoError(t, err)

	event := NewEvent(ScholarshipCreated, map[string]interface{}{"id": "abc", "name": "Scholarship A"})
	require.NoError(t, publisher.Publish(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, event.ID, msg.UUID)
		assert.Equal(t, string(ScholarshipCreated), msg.Metadata.Get("event_type"))

		var got Event
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, ScholarshipCreated, got.Type)
		assert.Equal(t, EventSource, got.Source)
		assert.Equal(t, "Scholarship A", got.Data["name"])
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}
}

func TestWatermillPublisher_TopicWithoutPrefix(t *testing.T) {
	p := NewPublisher(nil, "", discardLogger())
	assert.Equal(t, "review.created", p.Topic(ReviewCreated))
}

func TestNewWatermillPublisher_DefaultsToGoChannel(t *testing.T) {
	p, err := NewWatermillPublisher(PublisherConfig{TopicPrefix: "scholarship"}, discardLogger())
	require.NoError(t, err)
	assert.NoError(t, p.Publish(context.Background(), NewEvent(ReviewCreated, nil)))
	assert.NoError(t, p.Close())
}

func TestPublishSafe(t *testing.T) {
	mock := NewMockEventPublisher(discardLogger())

	PublishSafe(context.Background(), mock, discardLogger(), UserRoleRequested, map[string]interface{}{"email": "a@b.c"})
	events := mock.GetPublishedEvents()
	require.Len(t, events, 1)
	assert.Equal(t, UserRoleRequested, events[0].Type)
	assert.NotEmpty(t, events[0].ID)

	mock.ClearEvents()
	mock.Err = errors.New("broker down")
	PublishSafe(context.Background(), mock, discardLogger(), UserRoleRequested, nil)
	assert.Empty(t, mock.GetPublishedEvents())

	PublishSafe(context.Background(), nil, discardLogger(), UserRoleRequested, nil)
}

func TestNewWatermillPublisher_WarnsWithoutBrokers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	publisher, err := NewWatermillPublisher(PublisherConfig{TopicPrefix: "scholarship"}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "in-process only")
	assert.Contains(t, out, "transport=gochannel")
}
