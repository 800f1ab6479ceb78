package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskora/taskora-listing-service/internal/domain"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/mappers"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultAssignmentRepository struct {
	DB *gorm.DB
}

func NewDefaultAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{DB: db}
}

// AcceptProposal runs the whole acceptance as one transaction. The listing
// row is locked FIRST so concurrent accepts against the same listing
// serialize on it regardless of which proposal they target; locking the
// proposal first would let two accepts hold their own proposal rows and
// deadlock on the sibling bulk-reject. Once the listing is held, the
// existing-assignment check runs before any status guard so the loser of a
// settled race always sees ErrConflict.
func (r *DefaultAssignmentRepository) AcceptProposal(ctx context.Context, proposalID string) (*domain.AcceptanceResult, error) {
	var result *domain.AcceptanceResult

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Unlocked read just to resolve the listing id.
		var proposal models.ProposalModel
		if err := active(tx).First(&proposal, "id = ?", proposalID).Error; err != nil {
			return translate(err, "proposal", proposalID)
		}

		var listing models.ListingModel
		if err := active(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
			First(&listing, "id = ?", proposal.ListingID).Error; err != nil {
			return translate(err, "listing", proposal.ListingID)
		}

		var existing int64
		if err := tx.Model(&models.AssignmentModel{}).
			Where("listing_id = ?", listing.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return domain.Conflictf("assignment already exists for listing %s", listing.ID)
		}

		if listing.Status != domain.ListingPublished {
			return domain.InvalidStatef("listing %s is not published", listing.ID)
		}

		// Re-read the proposal under lock now that the listing is held.
		if err := active(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
			First(&proposal, "id = ?", proposalID).Error; err != nil {
			return translate(err, "proposal", proposalID)
		}
		if proposal.Status != domain.ProposalPending {
			return domain.InvalidStatef("only pending proposals can be accepted")
		}

		now := time.Now()

		if err := tx.Model(&models.ProposalModel{}).
			Where("id = ?", proposal.ID).
			Updates(map[string]any{
				"status":      domain.ProposalAccepted,
				"accepted_at": now,
				"updated_at":  now,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.ListingModel{}).
			Where("id = ?", listing.ID).
			Updates(map[string]any{
				"status":      domain.ListingAssigned,
				"assigned_at": now,
				"final_price": proposal.Amount,
				"updated_at":  now,
			}).Error; err != nil {
			return err
		}

		assignment := models.AssignmentModel{
			ID:         uuid.NewString(),
			ListingID:  listing.ID,
			ProposalID: proposal.ID,
			AssigneeID: proposal.ProposerID,
			Status:     domain.AssignmentAssigned,
			AssignedAt: now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			// Unique index on listing_id is the last line of defense should
			// the count above ever race.
			return translate(err, "assignment", listing.ID)
		}

		var siblings []models.ProposalModel
		if err := active(tx).
			Where("listing_id = ? AND id <> ? AND status = ?", listing.ID, proposal.ID, domain.ProposalPending).
			Find(&siblings).Error; err != nil {
			return err
		}
		if len(siblings) > 0 {
			if err := tx.Model(&models.ProposalModel{}).
				Where("listing_id = ? AND id <> ? AND status = ?", listing.ID, proposal.ID, domain.ProposalPending).
				Updates(map[string]any{
					"status":      domain.ProposalRejected,
					"rejected_at": now,
					"updated_at":  now,
				}).Error; err != nil {
				return err
			}
		}

		proposal.Status = domain.ProposalAccepted
		proposal.AcceptedAt = &now
		listing.Status = domain.ListingAssigned
		listing.AssignedAt = &now
		listing.FinalPrice = proposal.Amount

		rejected := make([]*domain.Proposal, len(siblings))
		for i := range siblings {
			siblings[i].Status = domain.ProposalRejected
			siblings[i].RejectedAt = &now
			rejected[i] = mappers.ToDomainProposal(&siblings[i])
		}

		result = &domain.AcceptanceResult{
			Assignment:        mappers.ToDomainAssignment(&assignment),
			AcceptedProposal:  mappers.ToDomainProposal(&proposal),
			Listing:           mappers.ToDomainListing(&listing),
			RejectedProposals: rejected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *DefaultAssignmentRepository) GetAssignmentByID(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	var assignment models.AssignmentModel
	if err := active(r.DB.WithContext(ctx)).First(&assignment, "id = ?", assignmentID).Error; err != nil {
		return nil, translate(err, "assignment", assignmentID)
	}
	return mappers.ToDomainAssignment(&assignment), nil
}

func (r *DefaultAssignmentRepository) GetAssignmentByListingID(ctx context.Context, listingID string) (*domain.Assignment, error) {
	var assignment models.AssignmentModel
	if err := active(r.DB.WithContext(ctx)).First(&assignment, "listing_id = ?", listingID).Error; err != nil {
		return nil, translate(err, "assignment for listing", listingID)
	}
	return mappers.ToDomainAssignment(&assignment), nil
}

// StartAssignment moves the assignment and its parent listing to IN_PROGRESS
// in one transaction.
func (r *DefaultAssignmentRepository) StartAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	return r.transition(ctx, assignmentID, func(tx *gorm.DB, assignment *models.AssignmentModel, now time.Time) error {
		if assignment.Status != domain.AssignmentAssigned {
			return domain.InvalidStatef("only assigned assignments can be started")
		}
		if err := tx.Model(&models.AssignmentModel{}).
			Where("id = ?", assignment.ID).
			Updates(map[string]any{
				"status":     domain.AssignmentInProgress,
				"started_at": now,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ListingModel{}).
			Where("id = ?", assignment.ListingID).
			Updates(map[string]any{
				"status":     domain.ListingInProgress,
				"started_at": now,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}
		assignment.Status = domain.AssignmentInProgress
		assignment.StartedAt = &now
		return nil
	})
}

// CompleteAssignment moves the assignment and its parent listing to COMPLETED
// in one transaction, persisting notes and the raw rating/review.
func (r *DefaultAssignmentRepository) CompleteAssignment(ctx context.Context, assignmentID string, params domain.CompleteAssignmentParams) (*domain.Assignment, error) {
	return r.transition(ctx, assignmentID, func(tx *gorm.DB, assignment *models.AssignmentModel, now time.Time) error {
		if assignment.Status != domain.AssignmentInProgress {
			return domain.InvalidStatef("only in-progress assignments can be completed")
		}
		updates := map[string]any{
			"status":           domain.AssignmentCompleted,
			"completed_at":     now,
			"completion_notes": params.CompletionNotes,
			"updated_at":       now,
		}
		if params.Rating != 0 {
			updates["rating"] = params.Rating
			updates["review"] = params.Review
		}
		if err := tx.Model(&models.AssignmentModel{}).
			Where("id = ?", assignment.ID).
			Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ListingModel{}).
			Where("id = ?", assignment.ListingID).
			Updates(map[string]any{
				"status":       domain.ListingCompleted,
				"completed_at": now,
				"updated_at":   now,
			}).Error; err != nil {
			return err
		}
		assignment.Status = domain.AssignmentCompleted
		assignment.CompletedAt = &now
		assignment.CompletionNotes = params.CompletionNotes
		if params.Rating != 0 {
			assignment.Rating = params.Rating
			assignment.Review = params.Review
		}
		return nil
	})
}

// CancelAssignment cancels the assignment only; listing cancellation is a
// separate owner action.
func (r *DefaultAssignmentRepository) CancelAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	return r.transition(ctx, assignmentID, func(tx *gorm.DB, assignment *models.AssignmentModel, now time.Time) error {
		if assignment.Status != domain.AssignmentAssigned && assignment.Status != domain.AssignmentInProgress {
			return domain.InvalidStatef("only assigned or in-progress assignments can be cancelled")
		}
		if err := tx.Model(&models.AssignmentModel{}).
			Where("id = ?", assignment.ID).
			Updates(map[string]any{
				"status":       domain.AssignmentCancelled,
				"cancelled_at": now,
				"updated_at":   now,
			}).Error; err != nil {
			return err
		}
		assignment.Status = domain.AssignmentCancelled
		assignment.CancelledAt = &now
		return nil
	})
}

func (r *DefaultAssignmentRepository) UpdateProgressNotes(ctx context.Context, assignmentID, notes string) error {
	result := active(r.DB.WithContext(ctx).Model(&models.AssignmentModel{})).
		Where("id = ?", assignmentID).
		Updates(map[string]any{
			"progress_notes": notes,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundf("assignment %s", assignmentID)
	}
	return nil
}

func (r *DefaultAssignmentRepository) transition(
	ctx context.Context,
	assignmentID string,
	apply func(tx *gorm.DB, assignment *models.AssignmentModel, now time.Time) error,
) (*domain.Assignment, error) {
	var assignment models.AssignmentModel

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := active(tx.Clauses(clause.Locking{Strength: "UPDATE"})).
			First(&assignment, "id = ?", assignmentID).Error; err != nil {
			return translate(err, "assignment", assignmentID)
		}
		return apply(tx, &assignment, time.Now())
	})
	if err != nil {
		return nil, err
	}

	return mappers.ToDomainAssignment(&assignment), nil
}
