// Package pubsub carries sign-in flow events between components without
// coupling producers to consumers.
package pubsub

import "context"

// Message is the structure passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to
	// (e.g. "signin.lookup.resolved").
	Topic string
	// Payload contains the raw event data, usually JSON.
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context
	// (e.g. event IDs, timestamps).
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
// Subscribe is non-blocking; the handler runs on a background goroutine
// until the context is canceled.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
