package utils

import (
	"fmt"

	"marketplace/backend/config"
	"marketplace/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the shared database handle and migrates the schema.
// The handle is injected into the controllers; nothing imports it globally.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("could not migrate schema: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
		&models.OwnedCourse{},
		&models.LearningCourse{},
		&models.WishlistCourse{},
		&models.Course{},
		&models.SubDirectory{},
		&models.Video{},
		&models.Review{},
	)
}
