package domain

import (
	"context"
	"time"
)

type AssignmentStatus string

const (
	AssignmentAssigned   AssignmentStatus = "ASSIGNED"
	AssignmentInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentCompleted  AssignmentStatus = "COMPLETED"
	AssignmentCancelled  AssignmentStatus = "CANCELLED"
)

// Assignment is created exactly once per listing, atomically with the accept
// transition, and never recreated.
type Assignment struct {
	ID         string
	ListingID  string
	ProposalID string
	AssigneeID string
	Status     AssignmentStatus

	ProgressNotes   string
	CompletionNotes string
	Rating          int32 // 0 means not rated
	Review          string

	AssignedAt  time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDeleteInfo
}

// AcceptanceResult reports everything the post-commit side effects need:
// the winner, the listing it locked, and the siblings that were bulk-rejected.
type AcceptanceResult struct {
	Assignment        *Assignment
	AcceptedProposal  *Proposal
	Listing           *Listing
	RejectedProposals []*Proposal
}

type CompleteAssignmentParams struct {
	CompletionNotes string
	Rating          int32
	Review          string
}

// AssignmentRepository owns every multi-row transition. Each mutating method
// runs inside a single transaction, re-reads state under lock and returns
// ErrInvalidState / ErrConflict when a guard fails, so concurrent callers
// resolve to exactly one winner.
type AssignmentRepository interface {
	AcceptProposal(ctx context.Context, proposalID string) (*AcceptanceResult, error)
	GetAssignmentByID(ctx context.Context, assignmentID string) (*Assignment, error)
	GetAssignmentByListingID(ctx context.Context, listingID string) (*Assignment, error)
	StartAssignment(ctx context.Context, assignmentID string) (*Assignment, error)
	CompleteAssignment(ctx context.Context, assignmentID string, params CompleteAssignmentParams) (*Assignment, error)
	CancelAssignment(ctx context.Context, assignmentID string) (*Assignment, error)
	UpdateProgressNotes(ctx context.Context, assignmentID, notes string) error
}
