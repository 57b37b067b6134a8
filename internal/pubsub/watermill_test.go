package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/LukeCarrier/signin/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	err := bridge.Subscribe(ctx, "signin.test", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, pubsub.Message{
		Topic:    "signin.test",
		Payload:  []byte(`{"username":"alice"}`),
		Metadata: map[string]string{"event_id": "abc"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "signin.test", msg.Topic)
		assert.JSONEq(t, `{"username":"alice"}`, string(msg.Payload))
		assert.Equal(t, "abc", msg.Metadata["event_id"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridge_TopicsAreIsolated(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	err := bridge.Subscribe(ctx, "signin.a", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: "signin.b", Payload: []byte(`{}`)}))

	select {
	case msg := <-received:
		t.Fatalf("received message from the wrong topic: %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
