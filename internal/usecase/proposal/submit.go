package proposal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/taskora/taskora-listing-service/internal/domain"
	proposaldto "github.com/taskora/taskora-listing-service/internal/usecase/dto/proposal"
)

func (uc *DefaultProposalUsecase) SubmitProposal(ctx context.Context, input *proposaldto.SubmitProposalInput) (*domain.Proposal, error) {
	if input.Amount <= 0 {
		return nil, domain.InvalidStatef("proposal amount must be positive")
	}

	listing, err := uc.ListingRepo.GetListingByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != domain.ListingPublished {
		return nil, domain.InvalidStatef("listing %s is not open for proposals", listing.ID)
	}
	if listing.OwnerID == input.ProposerID {
		return nil, domain.InvalidStatef("owner cannot propose on own listing")
	}

	// Fast pre-check; the unique index on (listing_id, proposer_id) catches
	// whatever races past it.
	_, err = uc.ProposalRepo.GetProposalByListingAndProposer(ctx, input.ListingID, input.ProposerID)
	if err == nil {
		return nil, domain.Conflictf("proposal already exists for listing %s by %s", input.ListingID, input.ProposerID)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	proposal := &domain.Proposal{
		ID:           uuid.NewString(),
		ListingID:    input.ListingID,
		ProposerID:   input.ProposerID,
		Amount:       input.Amount,
		DurationDays: input.DurationDays,
		Message:      input.Message,
		Status:       domain.ProposalPending,
		AppliedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.ProposalRepo.CreateProposal(ctx, proposal); err != nil {
		return nil, err
	}

	uc.Metrics.ProposalsSubmittedTotal.Inc()
	return proposal, nil
}
