package domain

import (
	"context"
	"time"
)

type ProposalStatus string

const (
	ProposalPending   ProposalStatus = "PENDING"
	ProposalAccepted  ProposalStatus = "ACCEPTED"
	ProposalRejected  ProposalStatus = "REJECTED"
	ProposalWithdrawn ProposalStatus = "WITHDRAWN"
)

// Proposal is unique per (listing, proposer). Among all proposals of one
// listing at most one may ever hold ProposalAccepted.
type Proposal struct {
	ID           string
	ListingID    string
	ProposerID   string
	Amount       float64
	DurationDays int32
	Message      string
	Status       ProposalStatus

	AppliedAt   time.Time
	AcceptedAt  *time.Time
	RejectedAt  *time.Time
	WithdrawnAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	SoftDeleteInfo
}

type ProposalRepository interface {
	CreateProposal(ctx context.Context, proposal *Proposal) error
	GetProposalByID(ctx context.Context, proposalID string) (*Proposal, error)
	GetProposalByListingAndProposer(ctx context.Context, listingID, proposerID string) (*Proposal, error)
	GetProposalsByListingID(ctx context.Context, listingID string) ([]*Proposal, error)
	GetProposalsByProposerID(ctx context.Context, proposerID string, page, limit int64) ([]*Proposal, int64, error)
	UpdateProposalStatus(ctx context.Context, proposalID string, status ProposalStatus, at time.Time) error
}
