package postgres

import (
	"log"

	"github.com/taskora/taskora-listing-service/internal/config"
	"github.com/taskora/taskora-listing-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ListingConfig) *gorm.DB {
	dsn := cfg.ListingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ListingModel{},
		&models.ProposalModel{},
		&models.AssignmentModel{},
		&models.DisputeModel{},
		&models.AttachmentModel{},
	)

	return db
}
