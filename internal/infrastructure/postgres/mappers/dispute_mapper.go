package mappers

import (
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainDispute(model *models.DisputeModel) *domain.Dispute {
	return &domain.Dispute{
		ID:           model.ID,
		ListingID:    model.ListingID,
		RaisedByID:   model.RaisedByID,
		Type:         model.Type,
		Description:  model.Description,
		Status:       model.Status,
		Resolution:   model.Resolution,
		ResolvedByID: model.ResolvedByID,
		ResolvedAt:   model.ResolvedAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		SoftDeleteInfo: domain.SoftDeleteInfo{
			IsDeleted:  model.IsDeleted,
			DeletedAt:  model.DeletedAt,
			RestoredAt: model.RestoredAt,
		},
	}
}

func ToGORMDispute(dispute *domain.Dispute) *models.DisputeModel {
	return &models.DisputeModel{
		ID:           dispute.ID,
		ListingID:    dispute.ListingID,
		RaisedByID:   dispute.RaisedByID,
		Type:         dispute.Type,
		Description:  dispute.Description,
		Status:       dispute.Status,
		Resolution:   dispute.Resolution,
		ResolvedByID: dispute.ResolvedByID,
		ResolvedAt:   dispute.ResolvedAt,
		CreatedAt:    dispute.CreatedAt,
		UpdatedAt:    dispute.UpdatedAt,
		SoftDelete: models.SoftDelete{
			IsDeleted:  dispute.IsDeleted,
			DeletedAt:  dispute.DeletedAt,
			RestoredAt: dispute.RestoredAt,
		},
	}
}
