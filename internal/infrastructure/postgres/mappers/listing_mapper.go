package mappers

import (
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainListing(model *models.ListingModel) *domain.Listing {
	return &domain.Listing{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		CategoryID:  model.CategoryID,
		Title:       model.Title,
		Description: model.Description,
		BudgetMin:   model.BudgetMin,
		BudgetMax:   model.BudgetMax,
		FinalPrice:  model.FinalPrice,
		Status:      model.Status,
		PublishedAt: model.PublishedAt,
		AssignedAt:  model.AssignedAt,
		StartedAt:   model.StartedAt,
		CompletedAt: model.CompletedAt,
		CancelledAt: model.CancelledAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		SoftDeleteInfo: domain.SoftDeleteInfo{
			IsDeleted:  model.IsDeleted,
			DeletedAt:  model.DeletedAt,
			RestoredAt: model.RestoredAt,
		},
	}
}

func ToGORMListing(listing *domain.Listing) *models.ListingModel {
	return &models.ListingModel{
		ID:          listing.ID,
		OwnerID:     listing.OwnerID,
		CategoryID:  listing.CategoryID,
		Title:       listing.Title,
		Description: listing.Description,
		BudgetMin:   listing.BudgetMin,
		BudgetMax:   listing.BudgetMax,
		FinalPrice:  listing.FinalPrice,
		Status:      listing.Status,
		PublishedAt: listing.PublishedAt,
		AssignedAt:  listing.AssignedAt,
		StartedAt:   listing.StartedAt,
		CompletedAt: listing.CompletedAt,
		CancelledAt: listing.CancelledAt,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
		SoftDelete: models.SoftDelete{
			IsDeleted:  listing.IsDeleted,
			DeletedAt:  listing.DeletedAt,
			RestoredAt: listing.RestoredAt,
		},
	}
}
