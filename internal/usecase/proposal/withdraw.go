package proposal

import (
	"context"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

func (uc *DefaultProposalUsecase) WithdrawProposal(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	proposal, err := uc.ProposalRepo.GetProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalPending {
		return nil, domain.InvalidStatef("only pending proposals can be withdrawn")
	}

	now := time.Now()
	if err := uc.ProposalRepo.UpdateProposalStatus(ctx, proposalID, domain.ProposalWithdrawn, now); err != nil {
		return nil, err
	}

	proposal.Status = domain.ProposalWithdrawn
	proposal.WithdrawnAt = &now
	proposal.UpdatedAt = now

	uc.Metrics.ProposalsWithdrawnTotal.Inc()
	return proposal, nil
}
