package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables backing this package's row models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &sessionModel{})
}
