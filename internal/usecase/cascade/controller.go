package cascade

import (
	"context"
	"time"

	"github.com/taskora/taskora-listing-service/internal/domain"
)

// Controller walks the statically declared relations of an entity and applies
// soft delete or restore to the whole closure in one logical operation.
type Controller struct {
	Store domain.CascadeStore
}

func NewController(store domain.CascadeStore) *Controller {
	return &Controller{Store: store}
}

// SoftDelete marks the entity and every declared dependent deleted.
func (c *Controller) SoftDelete(ctx context.Context, ref domain.Ref) error {
	closure, err := c.closure(ctx, ref)
	if err != nil {
		return err
	}
	return c.Store.MarkDeleted(ctx, closure, time.Now())
}

// Restore is the exact inverse: it walks the same declared relations and
// clears the deleted flag on the whole set.
func (c *Controller) Restore(ctx context.Context, ref domain.Ref) error {
	closure, err := c.closure(ctx, ref)
	if err != nil {
		return err
	}
	return c.Store.MarkRestored(ctx, closure, time.Now())
}

// HardDelete permanently removes a single record, bypassing cascade.
func (c *Controller) HardDelete(ctx context.Context, ref domain.Ref) error {
	return c.Store.HardDelete(ctx, ref)
}

// closure is a breadth-first walk over declared relations, root included.
func (c *Controller) closure(ctx context.Context, root domain.Ref) ([]domain.Ref, error) {
	seen := map[domain.Ref]bool{root: true}
	closure := []domain.Ref{root}
	queue := []domain.Ref{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		related, err := c.Store.Relations(ctx, current)
		if err != nil {
			return nil, err
		}
		for _, ref := range related {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			closure = append(closure, ref)
			queue = append(queue, ref)
		}
	}

	return closure, nil
}
