package assignment

import (
	"context"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

// CompleteAssignment finishes the engagement. The raw rating and review are
// persisted on the assignment; the completion notification carries them to
// the downstream rating aggregator.
func (uc *DefaultAssignmentUsecase) CompleteAssignment(ctx context.Context, assignmentID string, params domain.CompleteAssignmentParams) (*domain.Assignment, error) {
	if params.Rating != 0 && (params.Rating < 1 || params.Rating > 5) {
		return nil, domain.InvalidStatef("rating must be between 1 and 5")
	}

	assignment, err := uc.AssignmentRepo.CompleteAssignment(ctx, assignmentID, params)
	if err != nil {
		return nil, err
	}

	uc.Metrics.ListingsCompletedTotal.Inc()

	listing, lerr := uc.ListingRepo.GetListingByID(ctx, assignment.ListingID)
	if lerr == nil {
		assignee := assignment.AssigneeID
		assignmentRef := assignment.ID
		uc.dispatch(&sideEffect{
			name: "completed notification",
			run: func(ctx context.Context) error {
				return uc.Notifications.Notify(ctx, domain.Notification{
					Verb:        domain.VerbAssignmentCompleted,
					SenderID:    listing.OwnerID,
					RecipientID: assignee,
					TargetKind:  domain.KindAssignment,
					TargetID:    assignmentRef,
					Title:       "Assignment completed",
					Message:     "Listing " + listing.Title + " was marked completed",
				})
			},
		})
	}

	return assignment, nil
}
