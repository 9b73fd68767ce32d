package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/psindex/pkg/domain/interfaces"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/utils/async"
	"github.com/m-mizutani/psindex/pkg/utils/logging"
)

// Dispatcher runs a handler outside the request lifecycle
type Dispatcher func(ctx context.Context, handler func(ctx context.Context) error)

type webhookUseCase struct {
	repo     *model.Repository
	indexUC  interfaces.IndexUseCase
	dispatch Dispatcher
	mu       sync.Mutex
}

// NewWebhook creates a new instance of WebhookUseCase. A push to the
// branch of repo schedules one index regeneration via async.Dispatch.
func NewWebhook(repo *model.Repository, indexUC interfaces.IndexUseCase) *webhookUseCase {
	return NewWebhookWithDispatcher(repo, indexUC, async.Dispatch)
}

// NewWebhookWithDispatcher is NewWebhook with a custom dispatcher
func NewWebhookWithDispatcher(repo *model.Repository, indexUC interfaces.IndexUseCase, dispatch Dispatcher) *webhookUseCase {
	return &webhookUseCase{
		repo:     repo,
		indexUC:  indexUC,
		dispatch: dispatch,
	}
}

// ProcessEvent processes a webhook event
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := logging.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"ref", event.Ref,
		"repository", event.Repository,
		"sender", event.Sender,
	)

	if !event.Triggers(uc.repo) {
		logger.Debug("Event does not trigger regeneration",
			"type", event.Type,
			"ref", event.Ref,
			"repository", event.Repository,
		)
		return nil
	}

	uc.dispatch(ctx, uc.regenerate)
	return nil
}

// regenerate runs one regeneration; concurrent runs are serialized
func (uc *webhookUseCase) regenerate(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	_, err := uc.indexUC.Regenerate(ctx)
	return err
}
