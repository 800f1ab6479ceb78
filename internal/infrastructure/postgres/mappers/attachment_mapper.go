package mappers

import (
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
)

func ToDomainAttachment(model *models.AttachmentModel) *domain.Attachment {
	return &domain.Attachment{
		ID:         model.ID,
		OwnerKind:  model.OwnerKind,
		OwnerID:    model.OwnerID,
		UploaderID: model.UploaderID,
		FileName:   model.FileName,
		FileURL:    model.FileURL,
		SizeBytes:  model.SizeBytes,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
		SoftDeleteInfo: domain.SoftDeleteInfo{
			IsDeleted:  model.IsDeleted,
			DeletedAt:  model.DeletedAt,
			RestoredAt: model.RestoredAt,
		},
	}
}

func ToGORMAttachment(attachment *domain.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         attachment.ID,
		OwnerKind:  attachment.OwnerKind,
		OwnerID:    attachment.OwnerID,
		UploaderID: attachment.UploaderID,
		FileName:   attachment.FileName,
		FileURL:    attachment.FileURL,
		SizeBytes:  attachment.SizeBytes,
		CreatedAt:  attachment.CreatedAt,
		UpdatedAt:  attachment.UpdatedAt,
		SoftDelete: models.SoftDelete{
			IsDeleted:  attachment.IsDeleted,
			DeletedAt:  attachment.DeletedAt,
			RestoredAt: attachment.RestoredAt,
		},
	}
}
