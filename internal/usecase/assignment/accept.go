package assignment

import (
	"context"
	"errors"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

// AcceptProposal turns one pending proposal into the listing's single
// assignment. The repository runs the whole transition as one transaction
// and owns the guard ordering: once the listing is settled every later
// accept gets ErrConflict, however the targeted proposal ended up. This
// layer fires the post-commit side effects and keeps the metrics.
func (uc *DefaultAssignmentUsecase) AcceptProposal(ctx context.Context, proposalID string) (*domain.AcceptanceResult, error) {
	result, err := uc.AssignmentRepo.AcceptProposal(ctx, proposalID)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.Metrics.AcceptConflictsTotal.Inc()
		}
		return nil, err
	}

	uc.Metrics.ProposalsAcceptedTotal.Inc()
	uc.Metrics.ListingsAssignedTotal.Inc()
	for range result.RejectedProposals {
		uc.Metrics.ProposalsRejectedTotal.WithLabelValues("sibling_accepted").Inc()
	}

	// Committed. Everything below is best-effort and never unwinds the
	// transition.
	uc.dispatchAcceptanceEffects(result)

	return result, nil
}

func (uc *DefaultAssignmentUsecase) dispatchAcceptanceEffects(result *domain.AcceptanceResult) {
	listing := result.Listing
	winner := result.AcceptedProposal

	uc.dispatch(&sideEffect{
		name: "chat participant for assignee",
		run: func(ctx context.Context) error {
			return uc.Chat.EnsureParticipant(ctx, listing.ID, winner.ProposerID, "assignee")
		},
	})

	uc.dispatch(&sideEffect{
		name: "accepted notification",
		run: func(ctx context.Context) error {
			return uc.Notifications.Notify(ctx, domain.Notification{
				Verb:        domain.VerbProposalAccepted,
				SenderID:    listing.OwnerID,
				RecipientID: winner.ProposerID,
				TargetKind:  domain.KindProposal,
				TargetID:    winner.ID,
				Title:       "Proposal accepted",
				Message:     "Your proposal was accepted for listing " + listing.Title,
			})
		},
	})

	for _, rejected := range result.RejectedProposals {
		recipient := rejected.ProposerID
		proposalRef := rejected.ID
		uc.dispatch(&sideEffect{
			name: "rejected notification",
			run: func(ctx context.Context) error {
				return uc.Notifications.Notify(ctx, domain.Notification{
					Verb:        domain.VerbProposalRejected,
					SenderID:    listing.OwnerID,
					RecipientID: recipient,
					TargetKind:  domain.KindProposal,
					TargetID:    proposalRef,
					Title:       "Proposal not selected",
					Message:     "Another proposal was accepted for listing " + listing.Title,
				})
			},
		})
	}
}
