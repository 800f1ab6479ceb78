package mappers

import (
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainAssignment(model *models.AssignmentModel) *domain.Assignment {
	return &domain.Assignment{
		ID:              model.ID,
		ListingID:       model.ListingID,
		ProposalID:      model.ProposalID,
		AssigneeID:      model.AssigneeID,
		Status:          model.Status,
		ProgressNotes:   model.ProgressNotes,
		CompletionNotes: model.CompletionNotes,
		Rating:          model.Rating,
		Review:          model.Review,
		AssignedAt:      model.AssignedAt,
		StartedAt:       model.StartedAt,
		CompletedAt:     model.CompletedAt,
		CancelledAt:     model.CancelledAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		SoftDeleteInfo: domain.SoftDeleteInfo{
			IsDeleted:  model.IsDeleted,
			DeletedAt:  model.DeletedAt,
			RestoredAt: model.RestoredAt,
		},
	}
}

func ToGORMAssignment(assignment *domain.Assignment) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:              assignment.ID,
		ListingID:       assignment.ListingID,
		ProposalID:      assignment.ProposalID,
		AssigneeID:      assignment.AssigneeID,
		Status:          assignment.Status,
		ProgressNotes:   assignment.ProgressNotes,
		CompletionNotes: assignment.CompletionNotes,
		Rating:          assignment.Rating,
		Review:          assignment.Review,
		AssignedAt:      assignment.AssignedAt,
		StartedAt:       assignment.StartedAt,
		CompletedAt:     assignment.CompletedAt,
		CancelledAt:     assignment.CancelledAt,
		CreatedAt:       assignment.CreatedAt,
		UpdatedAt:       assignment.UpdatedAt,
		SoftDelete: models.SoftDelete{
			IsDeleted:  assignment.IsDeleted,
			DeletedAt:  assignment.DeletedAt,
			RestoredAt: assignment.RestoredAt,
		},
	}
}
