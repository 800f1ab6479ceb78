package domain

import (
	"context"
	"time"
)

// Attachment links an uploaded file to its owning entity through a typed
// (kind, id) pair instead of an untyped polymorphic lookup.
type Attachment struct {
	ID         string
	OwnerKind  OwnerKind
	OwnerID    string
	UploaderID string
	FileName   string
	FileURL    string
	SizeBytes  int64

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDeleteInfo
}

type AttachmentRepository interface {
	CreateAttachments(ctx context.Context, attachments []*Attachment) error
	GetAttachmentsByOwner(ctx context.Context, owner Ref) ([]*Attachment, error)
}
