package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/psindex/pkg/utils/logging"
)

// Dispatch runs handler in its own goroutine, detached from the cancellation
// of ctx. The logger of ctx is carried over. Returned errors and panics are
// logged because nobody waits for the result.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	runCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(runCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()))
			}
		}()

		if err := handler(runCtx); err != nil {
			logging.From(runCtx).Error("error in async handler", "error", err)
		}
	}()
}
