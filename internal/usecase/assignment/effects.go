package assignment

import (
	"context"
	"log/slog"
	"time"
)

const maxEffectAttempts = 5

// sideEffect is a post-commit collaborator call: chat provisioning or a
// notification. Failures are queued and retried out of band; re-running the
// originating transition is never the retry path.
type sideEffect struct {
	name     string
	attempts int
	run      func(ctx context.Context) error
}

// dispatch runs the effect once in the background and queues it on failure.
func (uc *DefaultAssignmentUsecase) dispatch(effect *sideEffect) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		uc.runEffect(ctx, effect)
	}()
}

func (uc *DefaultAssignmentUsecase) runEffect(ctx context.Context, effect *sideEffect) {
	effect.attempts++
	if err := effect.run(ctx); err != nil {
		slog.Error("side effect failed",
			"effect", effect.name,
			"attempt", effect.attempts,
			"error", err.Error())
		uc.Metrics.NotificationFailuresTotal.Inc()
		if effect.attempts < maxEffectAttempts {
			uc.enqueue(effect)
		}
	}
}

func (uc *DefaultAssignmentUsecase) enqueue(effect *sideEffect) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pending = append(uc.pending, effect)
}

// StartRetryWorker drains failed side effects every 30 seconds.
func (uc *DefaultAssignmentUsecase) StartRetryWorker(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.mu.Lock()
			batch := uc.pending
			uc.pending = nil
			uc.mu.Unlock()

			for _, effect := range batch {
				runCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				uc.runEffect(runCtx, effect)
				cancel()
			}
		}
	}
}
