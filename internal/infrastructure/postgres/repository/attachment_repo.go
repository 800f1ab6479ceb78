package repository

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/mappers"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAttachmentRepository struct {
	DB *gorm.DB
}

func NewDefaultAttachmentRepository(db *gorm.DB) *DefaultAttachmentRepository {
	return &DefaultAttachmentRepository{DB: db}
}

func (r *DefaultAttachmentRepository) CreateAttachments(ctx context.Context, attachments []*domain.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}
	attachmentModels := make([]*models.AttachmentModel, len(attachments))
	for i, attachment := range attachments {
		attachmentModels[i] = mappers.ToGORMAttachment(attachment)
	}
	if err := r.DB.WithContext(ctx).Create(attachmentModels).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultAttachmentRepository) GetAttachmentsByOwner(ctx context.Context, owner domain.Ref) ([]*domain.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	err := active(r.DB.WithContext(ctx)).
		Where("owner_kind = ? AND owner_id = ?", owner.Kind, owner.ID).
		Order("created_at ASC").
		Find(&attachmentModels).Error
	if err != nil {
		return nil, err
	}

	attachments := make([]*domain.Attachment, len(attachmentModels))
	for i, attachmentModel := range attachmentModels {
		attachments[i] = mappers.ToDomainAttachment(&attachmentModel)
	}

	return attachments, nil
}
