package models

type Attraction struct {
	ID           uint64          `gorm:"primaryKey" json:"idAttraction"`
	Name         *string         `gorm:"type:varchar(255)" json:"name"`
	CreationDate *string         `gorm:"type:varchar(100)" json:"creationDate"` // free text, not validated
	Description  *string         `gorm:"type:text" json:"description"`
	Type         *AttractionType `gorm:"type:varchar(30);index" json:"type"`
	LocationID   *uint64         `gorm:"index" json:"-"`
	Location     *Location       `json:"location"`
	Services     []Service       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`
}
