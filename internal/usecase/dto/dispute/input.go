package disputedto

import "github.com/taskora/taskora-listing-service/internal/domain"

type FileInput struct {
	FileName  string
	FileURL   string
	SizeBytes int64
}

type CreateDisputeInput struct {
	ListingID   string
	RaisedByID  string
	Type        domain.DisputeType
	Description string
	Evidence    []FileInput
}

type ResolveDisputeInput struct {
	DisputeID  string
	ResolverID string
	Resolution string
	NewStatus  domain.DisputeStatus
}
