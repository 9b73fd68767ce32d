package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/psindex/pkg/domain/model"
	"github.com/m-mizutani/psindex/pkg/usecase"
)

// MockIndexUseCase counts regenerations
type MockIndexUseCase struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *MockIndexUseCase) Regenerate(ctx context.Context) (*model.RegenerateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &model.RegenerateResult{}, nil
}

func (m *MockIndexUseCase) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// syncDispatch runs the handler inline and records its error
type syncDispatch struct {
	errs []error
}

func (d *syncDispatch) Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	d.errs = append(d.errs, handler(ctx))
}

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     *model.WebhookEvent
		wantCalls int
	}{
		{
			name: "Push to configured branch regenerates",
			event: &model.WebhookEvent{
				ID:         "delivery-1",
				Type:       model.EventTypePush,
				Ref:        "refs/heads/main",
				Repository: "octo/scripts",
				Sender:     "octocat",
				ReceivedAt: time.Now(),
			},
			wantCalls: 1,
		},
		{
			name: "Push to other branch is ignored",
			event: &model.WebhookEvent{
				ID:         "delivery-2",
				Type:       model.EventTypePush,
				Ref:        "refs/heads/dev",
				Repository: "octo/scripts",
			},
			wantCalls: 0,
		},
		{
			name: "Ping is ignored",
			event: &model.WebhookEvent{
				ID:         "delivery-3",
				Type:       model.EventTypePing,
				Repository: "octo/scripts",
			},
			wantCalls: 0,
		},
		{
			name: "Unknown event is ignored",
			event: &model.WebhookEvent{
				ID:   "delivery-4",
				Type: model.EventTypeUnknown,
			},
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indexUC := &MockIndexUseCase{}
			dispatcher := &syncDispatch{}
			uc := usecase.NewWebhookWithDispatcher(testRepo(), indexUC, dispatcher.Dispatch)

			err := uc.ProcessEvent(context.Background(), tt.event)
			gt.NoError(t, err)
			gt.Number(t, indexUC.Calls()).Equal(tt.wantCalls)
		})
	}
}

func TestWebhookUseCase_RegenerationErrorIsNotReturned(t *testing.T) {
	indexUC := &MockIndexUseCase{err: errors.New("container element not found")}
	dispatcher := &syncDispatch{}
	uc := usecase.NewWebhookWithDispatcher(testRepo(), indexUC, dispatcher.Dispatch)

	err := uc.ProcessEvent(context.Background(), &model.WebhookEvent{
		Type:       model.EventTypePush,
		Ref:        "refs/heads/main",
		Repository: "octo/scripts",
	})
	gt.NoError(t, err)
	gt.A(t, dispatcher.errs).Length(1)
	gt.Error(t, dispatcher.errs[0])
}

func TestWebhookUseCase_AsyncDispatch(t *testing.T) {
	indexUC := &MockIndexUseCase{}
	uc := usecase.NewWebhook(testRepo(), indexUC)

	event := &model.WebhookEvent{
		Type:       model.EventTypePush,
		Ref:        "refs/heads/main",
		Repository: "octo/scripts",
	}
	for i := 0; i < 3; i++ {
		gt.NoError(t, uc.ProcessEvent(context.Background(), event))
	}

	deadline := time.Now().Add(2 * time.Second)
	for indexUC.Calls() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	gt.Number(t, indexUC.Calls()).Equal(3)
}
