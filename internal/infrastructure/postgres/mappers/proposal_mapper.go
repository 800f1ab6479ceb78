package mappers

import (
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainProposal(model *models.ProposalModel) *domain.Proposal {
	return &domain.Proposal{
		ID:           model.ID,
		ListingID:    model.ListingID,
		ProposerID:   model.ProposerID,
		Amount:       model.Amount,
		DurationDays: model.DurationDays,
		Message:      model.Message,
		Status:       model.Status,
		AppliedAt:    model.AppliedAt,
		AcceptedAt:   model.AcceptedAt,
		RejectedAt:   model.RejectedAt,
		WithdrawnAt:  model.WithdrawnAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		SoftDeleteInfo: domain.SoftDeleteInfo{
			IsDeleted:  model.IsDeleted,
			DeletedAt:  model.DeletedAt,
			RestoredAt: model.RestoredAt,
		},
	}
}

func ToGORMProposal(proposal *domain.Proposal) *models.ProposalModel {
	return &models.ProposalModel{
		ID:           proposal.ID,
		ListingID:    proposal.ListingID,
		ProposerID:   proposal.ProposerID,
		Amount:       proposal.Amount,
		DurationDays: proposal.DurationDays,
		Message:      proposal.Message,
		Status:       proposal.Status,
		AppliedAt:    proposal.AppliedAt,
		AcceptedAt:   proposal.AcceptedAt,
		RejectedAt:   proposal.RejectedAt,
		WithdrawnAt:  proposal.WithdrawnAt,
		CreatedAt:    proposal.CreatedAt,
		UpdatedAt:    proposal.UpdatedAt,
		SoftDelete: models.SoftDelete{
			IsDeleted:  proposal.IsDeleted,
			DeletedAt:  proposal.DeletedAt,
			RestoredAt: proposal.RestoredAt,
		},
	}
}
