package proposal

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

func (uc *DefaultProposalUsecase) GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	return uc.ProposalRepo.GetProposalByID(ctx, proposalID)
}

func (uc *DefaultProposalUsecase) GetProposalsByListingID(ctx context.Context, listingID string) ([]*domain.Proposal, error) {
	return uc.ProposalRepo.GetProposalsByListingID(ctx, listingID)
}

func (uc *DefaultProposalUsecase) GetProposalsByProposerID(ctx context.Context, proposerID string, page, limit int64) ([]*domain.Proposal, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.ProposalRepo.GetProposalsByProposerID(ctx, proposerID, page, limit)
}
