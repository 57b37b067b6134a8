package events

import (
	"context"
	"log/slog"

	"github.com/LukeCarrier/signin/internal/pubsub"
)

// auditTopics is every topic the audit log listens on.
var auditTopics = []string{
	TopicLookupResolved,
	TopicLookupDegraded,
	TopicRedirectIssued,
	TopicGuestBypass,
}

// RegisterAudit subscribes a structured-log audit trail to all sign-in
// topics. The subscriptions live until ctx is canceled.
func RegisterAudit(ctx context.Context, sub pubsub.Subscriber) error {
	for _, topic := range auditTopics {
		topic := topic
		err := sub.Subscribe(ctx, topic, func(ctx context.Context, msg pubsub.Message) error {
			slog.Info("signin event",
				"topic", topic,
				"event_id", msg.Metadata["event_id"],
				"payload", string(msg.Payload),
			)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
