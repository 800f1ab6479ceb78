package attachment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskora/taskora-listing-service/internal/domain"
)

type FileInput struct {
	FileName  string
	FileURL   string
	SizeBytes int64
}

// AttachmentUsecase links uploaded files to owning entities through a typed
// (kind, id) reference. Storage of the bytes themselves lives elsewhere.
type AttachmentUsecase interface {
	AttachFiles(ctx context.Context, owner domain.Ref, files []FileInput, uploaderID string) ([]*domain.Attachment, error)
	GetAttachmentsByOwner(ctx context.Context, owner domain.Ref) ([]*domain.Attachment, error)
}

type DefaultAttachmentUsecase struct {
	AttachmentRepo domain.AttachmentRepository
}

func NewDefaultAttachmentUsecase(attachmentRepo domain.AttachmentRepository) *DefaultAttachmentUsecase {
	return &DefaultAttachmentUsecase{AttachmentRepo: attachmentRepo}
}

func (uc *DefaultAttachmentUsecase) AttachFiles(ctx context.Context, owner domain.Ref, files []FileInput, uploaderID string) ([]*domain.Attachment, error) {
	if owner.ID == "" {
		return nil, domain.InvalidStatef("attachment owner id is required")
	}
	switch owner.Kind {
	case domain.KindListing, domain.KindProposal, domain.KindDispute, domain.KindAssignment:
	default:
		return nil, domain.InvalidStatef("unsupported attachment owner kind %q", owner.Kind)
	}

	now := time.Now()
	attachments := make([]*domain.Attachment, len(files))
	for i, file := range files {
		attachments[i] = &domain.Attachment{
			ID:         uuid.NewString(),
			OwnerKind:  owner.Kind,
			OwnerID:    owner.ID,
			UploaderID: uploaderID,
			FileName:   file.FileName,
			FileURL:    file.FileURL,
			SizeBytes:  file.SizeBytes,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	if err := uc.AttachmentRepo.CreateAttachments(ctx, attachments); err != nil {
		return nil, err
	}

	return attachments, nil
}

func (uc *DefaultAttachmentUsecase) GetAttachmentsByOwner(ctx context.Context, owner domain.Ref) ([]*domain.Attachment, error) {
	return uc.AttachmentRepo.GetAttachmentsByOwner(ctx, owner)
}
