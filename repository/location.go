package repository

import (
	"attractionapi/models"

	"gorm.io/gorm"
)

type LocationRepository interface {
	Save(l *models.Location) error
	FindByID(id uint64) (*models.Location, error)
}

type GormLocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Save(l *models.Location) error {
	return wrap(r.db.Omit("Attractions").Save(l).Error, "save location")
}

func (r *GormLocationRepository) FindByID(id uint64) (*models.Location, error) {
	l := models.Location{}
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, wrap(err, "find location")
	}
	return &l, nil
}
