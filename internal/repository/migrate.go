package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the five tables backing the service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&itemModel{},
		&itemRequestModel{},
		&bookingModel{},
		&commentModel{},
	)
}
