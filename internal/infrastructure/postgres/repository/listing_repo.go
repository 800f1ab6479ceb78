package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/mappers"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultListingRepository struct {
	DB *gorm.DB
}

func NewDefaultListingRepository(db *gorm.DB) *DefaultListingRepository {
	return &DefaultListingRepository{DB: db}
}

func (r *DefaultListingRepository) CreateListing(ctx context.Context, listing *domain.Listing) error {
	listingModel := mappers.ToGORMListing(listing)
	if err := r.DB.WithContext(ctx).Create(listingModel).Error; err != nil {
		return translate(err, "listing", listing.ID)
	}
	return nil
}

func (r *DefaultListingRepository) GetListingByID(ctx context.Context, listingID string) (*domain.Listing, error) {
	var listing models.ListingModel
	if err := active(r.DB.WithContext(ctx)).First(&listing, "id = ?", listingID).Error; err != nil {
		return nil, translate(err, "listing", listingID)
	}
	return mappers.ToDomainListing(&listing), nil
}

// GetListingByIDAny resolves soft-deleted listings too; used by the
// administrative restore flow.
func (r *DefaultListingRepository) GetListingByIDAny(ctx context.Context, listingID string) (*domain.Listing, error) {
	var listing models.ListingModel
	if err := r.DB.WithContext(ctx).First(&listing, "id = ?", listingID).Error; err != nil {
		return nil, translate(err, "listing", listingID)
	}
	return mappers.ToDomainListing(&listing), nil
}

func (r *DefaultListingRepository) GetListings(
	ctx context.Context,
	filters domain.ListingFilters,
	page, limit int64,
	sortBy, sortOrder string,
) ([]*domain.Listing, int64, error) {
	var listingModels []models.ListingModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "budget_max":
		safeSortBy = "budget_max"
	case "published_at":
		safeSortBy = "published_at"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := active(r.DB.WithContext(ctx).Model(&models.ListingModel{}))

	if filters.OwnerID != "" {
		baseQuery = baseQuery.Where("owner_id = ?", filters.OwnerID)
	}
	if filters.CategoryID != "" {
		baseQuery = baseQuery.Where("category_id = ?", filters.CategoryID)
	}
	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&listingModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find listings: %w", err)
	}

	listings := make([]*domain.Listing, len(listingModels))
	for i, listingModel := range listingModels {
		listings[i] = mappers.ToDomainListing(&listingModel)
	}

	return listings, total, nil
}

func (r *DefaultListingRepository) UpdateListingStatus(ctx context.Context, listingID string, status domain.ListingStatus, at time.Time) error {
	updates := map[string]any{
		"status":     status,
		"updated_at": at,
	}
	switch status {
	case domain.ListingPublished:
		updates["published_at"] = at
	case domain.ListingAssigned:
		updates["assigned_at"] = at
	case domain.ListingInProgress:
		updates["started_at"] = at
	case domain.ListingCompleted:
		updates["completed_at"] = at
	case domain.ListingCancelled:
		updates["cancelled_at"] = at
	}

	result := active(r.DB.WithContext(ctx).Model(&models.ListingModel{})).
		Where("id = ?", listingID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("listing %s", listingID)
	}
	return nil
}
