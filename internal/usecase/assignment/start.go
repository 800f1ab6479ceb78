package assignment

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

// StartAssignment moves the assignment and its listing to IN_PROGRESS.
func (uc *DefaultAssignmentUsecase) StartAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	assignment, err := uc.AssignmentRepo.StartAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	listing, lerr := uc.ListingRepo.GetListingByID(ctx, assignment.ListingID)
	if lerr == nil {
		assignee := assignment.AssigneeID
		assignmentRef := assignment.ID
		uc.dispatch(&sideEffect{
			name: "started notification",
			run: func(ctx context.Context) error {
				return uc.Notifications.Notify(ctx, domain.Notification{
					Verb:        domain.VerbAssignmentStarted,
					SenderID:    assignee,
					RecipientID: listing.OwnerID,
					TargetKind:  domain.KindAssignment,
					TargetID:    assignmentRef,
					Title:       "Work started",
					Message:     "Work has started on listing " + listing.Title,
				})
			},
		})
	}

	return assignment, nil
}
