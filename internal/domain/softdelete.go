package domain

import (
	"context"
	"time"
)

// OwnerKind discriminates which table a Ref points into.
type OwnerKind string

const (
	KindListing    OwnerKind = "LISTING"
	KindProposal   OwnerKind = "PROPOSAL"
	KindAssignment OwnerKind = "ASSIGNMENT"
	KindDispute    OwnerKind = "DISPUTE"
	KindAttachment OwnerKind = "ATTACHMENT"
)

// Ref is a typed reference to any soft-deletable entity.
type Ref struct {
	Kind OwnerKind
	ID   string
}

// SoftDeleteInfo is carried by every entity. Read paths exclude rows with
// IsDeleted set unless the caller explicitly opts into deleted records.
type SoftDeleteInfo struct {
	IsDeleted  bool
	DeletedAt  *time.Time
	RestoredAt *time.Time
}

// CascadeStore is the persistence half of the soft-delete cascade controller.
// Relations returns the statically declared dependents of a ref; MarkDeleted
// and MarkRestored apply the flag to a whole closure in one transaction.
type CascadeStore interface {
	Relations(ctx context.Context, ref Ref) ([]Ref, error)
	MarkDeleted(ctx context.Context, refs []Ref, at time.Time) error
	MarkRestored(ctx context.Context, refs []Ref, at time.Time) error
	HardDelete(ctx context.Context, ref Ref) error
}
