package github

import (
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/domain/types"
)

// ParseEvent converts a GitHub webhook delivery into a WebhookEvent.
// Event types other than push and ping are returned as EventTypeUnknown.
func ParseEvent(eventType, deliveryID string, payload []byte) (*model.WebhookEvent, error) {
	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: time.Now(),
	}

	switch model.WebhookEventType(eventType) {
	case model.EventTypePush, model.EventTypePing:
	default:
		event.Type = model.EventTypeUnknown
		return event, nil
	}

	parsed, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid webhook payload",
			goerr.V("event_type", eventType),
			goerr.V("delivery_id", deliveryID),
			goerr.T(types.ErrTagDecode),
		)
	}

	// Use Get*() helper methods for nil-safe field access
	if e, ok := parsed.(*github.PushEvent); ok {
		event.Ref = e.GetRef()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
	}

	return event, nil
}
