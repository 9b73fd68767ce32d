package interfaces

import (
	"context"

	"github.com/m-mizutani/psindex/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// IndexUseCase defines operations for regenerating the script index page
type IndexUseCase interface {
	// Regenerate walks the repository and rewrites the index document
	Regenerate(ctx context.Context) (*model.RegenerateResult, error)
}
