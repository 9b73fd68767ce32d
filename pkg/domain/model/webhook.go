package model

import (
	"strings"
	"time"
)

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypePush    WebhookEventType = "push"
	EventTypePing    WebhookEventType = "ping"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Ref        string           // Pushed ref (e.g., refs/heads/main)
	Repository string           // Repository full name
	Sender     string           // Sender username
	ReceivedAt time.Time        // Time when the event was received
}

// Branch returns the branch name of a push ref, or "" for non-branch refs
func (e *WebhookEvent) Branch() string {
	branch, ok := strings.CutPrefix(e.Ref, "refs/heads/")
	if !ok {
		return ""
	}
	return branch
}

// Triggers reports whether the event should regenerate the index of repo
func (e *WebhookEvent) Triggers(repo *Repository) bool {
	if e.Type != EventTypePush || repo == nil {
		return false
	}
	return strings.EqualFold(e.Repository, repo.FullName()) && e.Branch() == repo.Branch
}
