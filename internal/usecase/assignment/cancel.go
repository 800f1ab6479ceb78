package assignment

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

// CancelAssignment cancels the assignment without touching the listing;
// listing cancellation stays an owner decision.
func (uc *DefaultAssignmentUsecase) CancelAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	return uc.AssignmentRepo.CancelAssignment(ctx, assignmentID)
}
