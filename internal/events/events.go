// Package events defines the sign-in flow's audit events and the
// recorder that publishes them.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/LukeCarrier/signin/internal/pubsub"
	"github.com/google/uuid"
)

// Topics for sign-in flow events.
const (
	TopicLookupResolved = "signin.lookup.resolved"
	TopicLookupDegraded = "signin.lookup.degraded"
	TopicRedirectIssued = "signin.redirect.issued"
	TopicGuestBypass    = "signin.guest.bypass"
)

// LookupResolved records a domain lookup that produced a usable answer.
type LookupResolved struct {
	Username   string    `json:"username"`
	Domain     string    `json:"domain"`
	Email      *string   `json:"email"`
	OccurredAt time.Time `json:"occurredAt"`
}

// LookupDegraded records a lookup the flow had to fail open on.
type LookupDegraded struct {
	Username   string    `json:"username"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RedirectIssued records a cross-domain redirect handed to the browser.
type RedirectIssued struct {
	Username   string    `json:"username"`
	Domain     string    `json:"domain"`
	URL        string    `json:"url"`
	OccurredAt time.Time `json:"occurredAt"`
}

// GuestBypass records a guest submission that skipped domain resolution.
type GuestBypass struct {
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Recorder publishes flow events onto the bus. A nil Recorder is valid
// and records nothing, so callers never need to guard their calls.
type Recorder struct {
	pub pubsub.Publisher
}

// NewRecorder creates a Recorder over the given publisher.
func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub}
}

// Record serialises the event and publishes it. Publishing problems are
// logged, never surfaced: the audit trail must not break sign-in.
func (r *Recorder) Record(ctx context.Context, topic string, event any) {
	if r == nil || r.pub == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to encode sign-in event", "topic", topic, "error", err)
		return
	}

	msg := pubsub.Message{
		Topic:   topic,
		Payload: payload,
		Metadata: map[string]string{
			"event_id": uuid.NewString(),
		},
	}
	if err := r.pub.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish sign-in event", "topic", topic, "error", err)
	}
}
