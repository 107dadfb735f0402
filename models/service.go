package models

// Service is an amenity that lives and dies with its attraction
type Service struct {
	ID           uint64  `gorm:"primaryKey" json:"idService"`
	Name         *string `gorm:"type:varchar(255)" json:"name"`
	Description  *string `gorm:"type:text" json:"description"`
	AttractionID uint64  `gorm:"not null;index" json:"-"`
}
