package proposal

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/metrics"
	proposaldto "github.com/taskora/taskora-listing-service/internal/usecase/dto/proposal"
)

// ProposalUsecase is the intake side only: submit and withdraw. Accept and
// reject belong to the assignment transition engine.
type ProposalUsecase interface {
	SubmitProposal(ctx context.Context, input *proposaldto.SubmitProposalInput) (*domain.Proposal, error)
	WithdrawProposal(ctx context.Context, proposalID string) (*domain.Proposal, error)

	GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error)
	GetProposalsByListingID(ctx context.Context, listingID string) ([]*domain.Proposal, error)
	GetProposalsByProposerID(ctx context.Context, proposerID string, page, limit int64) ([]*domain.Proposal, int64, error)
}

type DefaultProposalUsecase struct {
	ProposalRepo domain.ProposalRepository
	ListingRepo  domain.ListingRepository
	Metrics      *metrics.LifecycleMetrics
}

func NewDefaultProposalUsecase(
	proposalRepo domain.ProposalRepository,
	listingRepo domain.ListingRepository,
	lifecycleMetrics *metrics.LifecycleMetrics) *DefaultProposalUsecase {

	return &DefaultProposalUsecase{
		ProposalRepo: proposalRepo,
		ListingRepo:  listingRepo,
		Metrics:      lifecycleMetrics,
	}
}
