package dispute

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
	disputedto "github.com/taskora/taskora-listing-service/internal/usecase/dto/dispute"
)

// ReviewDispute marks an open dispute as taken by an administrator.
func (uc *DefaultDisputeUsecase) ReviewDispute(ctx context.Context, disputeID string) (*domain.Dispute, error) {
	dispute, err := uc.DisputeRepo.GetDisputeByID(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != domain.DisputeOpen {
		return nil, domain.InvalidStatef("only open disputes can move to review")
	}

	if err := uc.DisputeRepo.UpdateDisputeStatus(ctx, disputeID, domain.DisputeUnderReview); err != nil {
		return nil, err
	}

	dispute.Status = domain.DisputeUnderReview
	return dispute, nil
}

// ResolveDispute closes out a dispute with a resolution note. Informational
// only: no listing or assignment state changes.
func (uc *DefaultDisputeUsecase) ResolveDispute(ctx context.Context, input *disputedto.ResolveDisputeInput) (*domain.Dispute, error) {
	if input.NewStatus != domain.DisputeResolved && input.NewStatus != domain.DisputeClosed {
		return nil, domain.InvalidStatef("disputes resolve to RESOLVED or CLOSED")
	}

	dispute, err := uc.DisputeRepo.GetDisputeByID(ctx, input.DisputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status != domain.DisputeOpen && dispute.Status != domain.DisputeUnderReview {
		return nil, domain.InvalidStatef("dispute %s is already settled", dispute.ID)
	}

	now := time.Now()
	if err := uc.DisputeRepo.ResolveDispute(ctx, input.DisputeID, input.ResolverID, input.Resolution, input.NewStatus, now); err != nil {
		return nil, err
	}

	dispute.Status = input.NewStatus
	dispute.Resolution = input.Resolution
	dispute.ResolvedByID = input.ResolverID
	dispute.ResolvedAt = &now
	dispute.UpdatedAt = now

	uc.Metrics.DisputesOpenGauge.Dec()

	go func(notification domain.Notification) {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.Notifications.Notify(notifyCtx, notification); err != nil {
			slog.Error("failed to publish dispute notification", "stage", "resolving", "error", err.Error())
		}
	}(domain.Notification{
		Verb:        domain.VerbDisputeResolved,
		SenderID:    input.ResolverID,
		RecipientID: dispute.RaisedByID,
		TargetKind:  domain.KindDispute,
		TargetID:    dispute.ID,
		Title:       "Dispute " + string(input.NewStatus),
		Message:     input.Resolution,
	})

	return dispute, nil
}
