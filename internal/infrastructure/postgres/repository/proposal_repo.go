package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/mappers"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProposalRepository struct {
	DB *gorm.DB
}

func NewDefaultProposalRepository(db *gorm.DB) *DefaultProposalRepository {
	return &DefaultProposalRepository{DB: db}
}

func (r *DefaultProposalRepository) CreateProposal(ctx context.Context, proposal *domain.Proposal) error {
	proposalModel := mappers.ToGORMProposal(proposal)
	if err := r.DB.WithContext(ctx).Create(proposalModel).Error; err != nil {
		// Unique index on (listing_id, proposer_id) backs the one-proposal-
		// per-proposer invariant even when the pre-check raced.
		return translate(err, "proposal", fmt.Sprintf("for listing %s by %s", proposal.ListingID, proposal.ProposerID))
	}
	return nil
}

func (r *DefaultProposalRepository) GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	var proposal models.ProposalModel
	if err := active(r.DB.WithContext(ctx)).First(&proposal, "id = ?", proposalID).Error; err != nil {
		return nil, translate(err, "proposal", proposalID)
	}
	return mappers.ToDomainProposal(&proposal), nil
}

func (r *DefaultProposalRepository) GetProposalByListingAndProposer(ctx context.Context, listingID, proposerID string) (*domain.Proposal, error) {
	var proposal models.ProposalModel
	err := active(r.DB.WithContext(ctx)).
		Where("listing_id = ? AND proposer_id = ?", listingID, proposerID).
		First(&proposal).Error
	if err != nil {
		return nil, translate(err, "proposal", fmt.Sprintf("for listing %s by %s", listingID, proposerID))
	}
	return mappers.ToDomainProposal(&proposal), nil
}

func (r *DefaultProposalRepository) GetProposalsByListingID(ctx context.Context, listingID string) ([]*domain.Proposal, error) {
	var proposalModels []models.ProposalModel
	err := active(r.DB.WithContext(ctx)).
		Where("listing_id = ?", listingID).
		Order("applied_at ASC").
		Find(&proposalModels).Error
	if err != nil {
		return nil, err
	}

	proposals := make([]*domain.Proposal, len(proposalModels))
	for i, proposalModel := range proposalModels {
		proposals[i] = mappers.ToDomainProposal(&proposalModel)
	}

	return proposals, nil
}

func (r *DefaultProposalRepository) GetProposalsByProposerID(ctx context.Context, proposerID string, page, limit int64) ([]*domain.Proposal, int64, error) {
	var proposalModels []models.ProposalModel
	var total int64

	baseQuery := active(r.DB.WithContext(ctx).Model(&models.ProposalModel{})).
		Where("proposer_id = ?", proposerID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proposals: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("applied_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&proposalModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find proposals: %w", err)
	}

	proposals := make([]*domain.Proposal, len(proposalModels))
	for i, proposalModel := range proposalModels {
		proposals[i] = mappers.ToDomainProposal(&proposalModel)
	}

	return proposals, total, nil
}

func (r *DefaultProposalRepository) UpdateProposalStatus(ctx context.Context, proposalID string, status domain.ProposalStatus, at time.Time) error {
	updates := map[string]any{
		"status":     status,
		"updated_at": at,
	}
	switch status {
	case domain.ProposalAccepted:
		updates["accepted_at"] = at
	case domain.ProposalRejected:
		updates["rejected_at"] = at
	case domain.ProposalWithdrawn:
		updates["withdrawn_at"] = at
	}

	result := active(r.DB.WithContext(ctx).Model(&models.ProposalModel{})).
		Where("id = ?", proposalID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("proposal %s", proposalID)
	}
	return nil
}
