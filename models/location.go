package models

// Location owns zero or more attractions. The back-reference is never serialized.
type Location struct {
	ID          uint64       `gorm:"primaryKey" json:"idLocation"`
	Name        *string      `gorm:"type:varchar(255);index" json:"nameLocation"`
	Population  *int64       `json:"populationLocation"`
	HasMetro    *bool        `json:"hasMetro"`
	Attractions []Attraction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
