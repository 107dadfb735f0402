package models

import "gorm.io/gorm"

// Migrate creates the locations, attractions and services tables (in that order)
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Location{}, &Attraction{}, &Service{})
}
