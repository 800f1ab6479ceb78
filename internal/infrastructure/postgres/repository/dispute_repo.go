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

type DefaultDisputeRepository struct {
	DB *gorm.DB
}

func NewDefaultDisputeRepository(db *gorm.DB) *DefaultDisputeRepository {
	return &DefaultDisputeRepository{DB: db}
}

func (r *DefaultDisputeRepository) CreateDispute(ctx context.Context, dispute *domain.Dispute) error {
	disputeModel := mappers.ToGORMDispute(dispute)
	if err := r.DB.WithContext(ctx).Create(disputeModel).Error; err != nil {
		return translate(err, "dispute", dispute.ID)
	}
	return nil
}

func (r *DefaultDisputeRepository) GetDisputeByID(ctx context.Context, disputeID string) (*domain.Dispute, error) {
	var dispute models.DisputeModel
	if err := active(r.DB.WithContext(ctx)).First(&dispute, "id = ?", disputeID).Error; err != nil {
		return nil, translate(err, "dispute", disputeID)
	}
	return mappers.ToDomainDispute(&dispute), nil
}

func (r *DefaultDisputeRepository) GetDisputesByListingID(ctx context.Context, listingID string) ([]*domain.Dispute, error) {
	var disputeModels []models.DisputeModel
	err := active(r.DB.WithContext(ctx)).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&disputeModels).Error
	if err != nil {
		return nil, err
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}

	return disputes, nil
}

func (r *DefaultDisputeRepository) GetDisputes(ctx context.Context, page, limit int64, status string) ([]*domain.Dispute, int64, error) {
	var disputeModels []models.DisputeModel
	var total int64

	baseQuery := active(r.DB.WithContext(ctx).Model(&models.DisputeModel{}))
	if status != "" {
		baseQuery = baseQuery.Where("status = ?", status)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count disputes: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&disputeModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find disputes: %w", err)
	}

	disputes := make([]*domain.Dispute, len(disputeModels))
	for i, disputeModel := range disputeModels {
		disputes[i] = mappers.ToDomainDispute(&disputeModel)
	}

	return disputes, total, nil
}

func (r *DefaultDisputeRepository) UpdateDisputeStatus(ctx context.Context, disputeID string, status domain.DisputeStatus) error {
	result := active(r.DB.WithContext(ctx).Model(&models.DisputeModel{})).
		Where("id = ?", disputeID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("dispute %s", disputeID)
	}
	return nil
}

func (r *DefaultDisputeRepository) ResolveDispute(ctx context.Context, disputeID, resolverID, resolution string, status domain.DisputeStatus, at time.Time) error {
	result := active(r.DB.WithContext(ctx).Model(&models.DisputeModel{})).
		Where("id = ?", disputeID).
		Updates(map[string]any{
			"status":         status,
			"resolution":     resolution,
			"resolved_by_id": resolverID,
			"resolved_at":    at,
			"updated_at":     at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("dispute %s", disputeID)
	}
	return nil
}
