package httpapi

import (
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

type listingView struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	CategoryID  string     `json:"category_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	BudgetMin   float64    `json:"budget_min"`
	BudgetMax   float64    `json:"budget_max"`
	FinalPrice  float64    `json:"final_price,omitempty"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	IsDeleted   bool       `json:"is_deleted,omitempty"`
}

func toListingView(listing *domain.Listing) listingView {
	return listingView{
		ID:          listing.ID,
		OwnerID:     listing.OwnerID,
		CategoryID:  listing.CategoryID,
		Title:       listing.Title,
		Description: listing.Description,
		BudgetMin:   listing.BudgetMin,
		BudgetMax:   listing.BudgetMax,
		FinalPrice:  listing.FinalPrice,
		Status:      string(listing.Status),
		PublishedAt: listing.PublishedAt,
		AssignedAt:  listing.AssignedAt,
		StartedAt:   listing.StartedAt,
		CompletedAt: listing.CompletedAt,
		CancelledAt: listing.CancelledAt,
		CreatedAt:   listing.CreatedAt,
		IsDeleted:   listing.IsDeleted,
	}
}

type proposalView struct {
	ID           string     `json:"id"`
	ListingID    string     `json:"listing_id"`
	ProposerID   string     `json:"proposer_id"`
	Amount       float64    `json:"amount"`
	DurationDays int32      `json:"duration_days,omitempty"`
	Message      string     `json:"message,omitempty"`
	Status       string     `json:"status"`
	AppliedAt    time.Time  `json:"applied_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	WithdrawnAt  *time.Time `json:"withdrawn_at,omitempty"`
}

func toProposalView(proposal *domain.Proposal) proposalView {
	return proposalView{
		ID:           proposal.ID,
		ListingID:    proposal.ListingID,
		ProposerID:   proposal.ProposerID,
		Amount:       proposal.Amount,
		DurationDays: proposal.DurationDays,
		Message:      proposal.Message,
		Status:       string(proposal.Status),
		AppliedAt:    proposal.AppliedAt,
		AcceptedAt:   proposal.AcceptedAt,
		RejectedAt:   proposal.RejectedAt,
		WithdrawnAt:  proposal.WithdrawnAt,
	}
}

type assignmentView struct {
	ID              string     `json:"id"`
	ListingID       string     `json:"listing_id"`
	ProposalID      string     `json:"proposal_id"`
	AssigneeID      string     `json:"assignee_id"`
	Status          string     `json:"status"`
	ProgressNotes   string     `json:"progress_notes,omitempty"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	Rating          int32      `json:"rating,omitempty"`
	Review          string     `json:"review,omitempty"`
	AssignedAt      time.Time  `json:"assigned_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
}

func toAssignmentView(assignment *domain.Assignment) assignmentView {
	return assignmentView{
		ID:              assignment.ID,
		ListingID:       assignment.ListingID,
		ProposalID:      assignment.ProposalID,
		AssigneeID:      assignment.AssigneeID,
		Status:          string(assignment.Status),
		ProgressNotes:   assignment.ProgressNotes,
		CompletionNotes: assignment.CompletionNotes,
		Rating:          assignment.Rating,
		Review:          assignment.Review,
		AssignedAt:      assignment.AssignedAt,
		StartedAt:       assignment.StartedAt,
		CompletedAt:     assignment.CompletedAt,
		CancelledAt:     assignment.CancelledAt,
	}
}

type disputeView struct {
	ID          string     `json:"id"`
	ListingID   string     `json:"listing_id"`
	RaisedByID  string     `json:"raised_by_id"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Resolution  string     `json:"resolution,omitempty"`
	ResolvedBy  string     `json:"resolved_by_id,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toDisputeView(dispute *domain.Dispute) disputeView {
	return disputeView{
		ID:          dispute.ID,
		ListingID:   dispute.ListingID,
		RaisedByID:  dispute.RaisedByID,
		Type:        string(dispute.Type),
		Description: dispute.Description,
		Status:      string(dispute.Status),
		Resolution:  dispute.Resolution,
		ResolvedBy:  dispute.ResolvedByID,
		ResolvedAt:  dispute.ResolvedAt,
		CreatedAt:   dispute.CreatedAt,
	}
}

type attachmentView struct {
	ID        string `json:"id"`
	OwnerKind string `json:"owner_kind"`
	OwnerID   string `json:"owner_id"`
	FileName  string `json:"file_name"`
	FileURL   string `json:"file_url"`
	SizeBytes int64  `json:"size_bytes,omitempty"`
}

func toAttachmentView(attachment *domain.Attachment) attachmentView {
	return attachmentView{
		ID:        attachment.ID,
		OwnerKind: string(attachment.OwnerKind),
		OwnerID:   attachment.OwnerID,
		FileName:  attachment.FileName,
		FileURL:   attachment.FileURL,
		SizeBytes: attachment.SizeBytes,
	}
}

type pagedView[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}
