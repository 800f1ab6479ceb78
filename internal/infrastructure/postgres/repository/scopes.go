package repository

import (
	"errors"

	"github.com/taskora/taskora-listing-service/internal/domain"
	"gorm.io/gorm"
)

// active is the default read path: soft-deleted rows are invisible unless a
// repository method explicitly opts into them.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// translate maps driver errors onto the domain taxonomy.
func translate(err error, entity, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFoundf("%s %s", entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.Conflictf("%s %s already exists", entity, id)
	default:
		return err
	}
}
