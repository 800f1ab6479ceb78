package assignment

import (
	"context"
	"sync"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/metrics"
)

// AssignmentUsecase is the transition engine: it owns every proposal decision
// and every assignment state change, and it is the only writer of the
// ASSIGNED / IN_PROGRESS / COMPLETED listing statuses.
type AssignmentUsecase interface {
	AcceptProposal(ctx context.Context, proposalID string) (*domain.AcceptanceResult, error)
	RejectProposal(ctx context.Context, proposalID string) (*domain.Proposal, error)

	StartAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error)
	CompleteAssignment(ctx context.Context, assignmentID string, params domain.CompleteAssignmentParams) (*domain.Assignment, error)
	CancelAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error)
	UpdateProgressNotes(ctx context.Context, assignmentID, notes string) error

	GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error)
	GetAssignmentByListingID(ctx context.Context, listingID string) (*domain.Assignment, error)

	StartRetryWorker(ctx context.Context)
}

type DefaultAssignmentUsecase struct {
	AssignmentRepo domain.AssignmentRepository
	ProposalRepo   domain.ProposalRepository
	ListingRepo    domain.ListingRepository
	Notifications  domain.NotificationGateway
	Chat           domain.ChatProvisioner
	Metrics        *metrics.LifecycleMetrics

	mu      sync.Mutex
	pending []*sideEffect
}

func NewDefaultAssignmentUsecase(
	assignmentRepo domain.AssignmentRepository,
	proposalRepo domain.ProposalRepository,
	listingRepo domain.ListingRepository,
	notifications domain.NotificationGateway,
	chat domain.ChatProvisioner,
	lifecycleMetrics *metrics.LifecycleMetrics) *DefaultAssignmentUsecase {

	return &DefaultAssignmentUsecase{
		AssignmentRepo: assignmentRepo,
		ProposalRepo:   proposalRepo,
		ListingRepo:    listingRepo,
		Notifications:  notifications,
		Chat:           chat,
		Metrics:        lifecycleMetrics,
	}
}

func (uc *DefaultAssignmentUsecase) GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	return uc.AssignmentRepo.GetAssignmentByID(ctx, assignmentID)
}

func (uc *DefaultAssignmentUsecase) GetAssignmentByListingID(ctx context.Context, listingID string) (*domain.Assignment, error) {
	return uc.AssignmentRepo.GetAssignmentByListingID(ctx, listingID)
}

func (uc *DefaultAssignmentUsecase) UpdateProgressNotes(ctx context.Context, assignmentID, notes string) error {
	return uc.AssignmentRepo.UpdateProgressNotes(ctx, assignmentID, notes)
}
