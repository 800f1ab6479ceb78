package assignment

import (
	"context"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

// RejectProposal declines a single proposal without accepting another.
// Independent of the bulk rejection accept performs.
func (uc *DefaultAssignmentUsecase) RejectProposal(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	proposal, err := uc.ProposalRepo.GetProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalPending {
		return nil, domain.InvalidStatef("only pending proposals can be rejected")
	}

	now := time.Now()
	if err := uc.ProposalRepo.UpdateProposalStatus(ctx, proposalID, domain.ProposalRejected, now); err != nil {
		return nil, err
	}

	proposal.Status = domain.ProposalRejected
	proposal.RejectedAt = &now
	proposal.UpdatedAt = now

	uc.Metrics.ProposalsRejectedTotal.WithLabelValues("declined").Inc()

	listing, err := uc.ListingRepo.GetListingByID(ctx, proposal.ListingID)
	if err == nil {
		recipient := proposal.ProposerID
		proposalRef := proposal.ID
		uc.dispatch(&sideEffect{
			name: "rejected notification",
			run: func(ctx context.Context) error {
				return uc.Notifications.Notify(ctx, domain.Notification{
					Verb:        domain.VerbProposalRejected,
					SenderID:    listing.OwnerID,
					RecipientID: recipient,
					TargetKind:  domain.KindProposal,
					TargetID:    proposalRef,
					Title:       "Proposal declined",
					Message:     "Your proposal was declined for listing " + listing.Title,
				})
			},
		})
	}

	return proposal, nil
}
