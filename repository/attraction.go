package repository

import (
	"attractionapi/models"

	"gorm.io/gorm"
)

type AttractionRepository interface {
	Save(a *models.Attraction) error
	FindByID(id uint64) (*models.Attraction, error)
	ExistsByID(id uint64) (bool, error)
	DeleteByID(id uint64) error
	FindAllByTypeOrderByName(t *models.AttractionType) ([]models.Attraction, error)
	FindAllByTypeOrderByID(t *models.AttractionType) ([]models.Attraction, error)
	FindAllByTypeOrderByDescription(t *models.AttractionType) ([]models.Attraction, error)
	FindAllByTypeOrderByCreationDate(t *models.AttractionType) ([]models.Attraction, error)
	FindAllByTypeOrderByLocation(t *models.AttractionType) ([]models.Attraction, error)
	FindAllByTypeOrderByServices(t *models.AttractionType) ([]models.Attraction, error)
	FindByLocationName(name string) ([]models.Attraction, error)
	LocationExists(id uint64) (bool, error)
}

type GormAttractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) *GormAttractionRepository {
	return &GormAttractionRepository{db: db}
}

// Save inserts when ID is zero and updates otherwise. The location is only
// linked through LocationID and never written; owned services are inserted alongside.
func (r *GormAttractionRepository) Save(a *models.Attraction) error {
	return wrap(r.db.Omit("Location").Save(a).Error, "save attraction")
}

func (r *GormAttractionRepository) FindByID(id uint64) (*models.Attraction, error) {
	a := models.Attraction{}
	err := r.db.Preload("Location").Preload("Services", orderedServices).First(&a, id).Error
	if err != nil {
		return nil, wrap(err, "find attraction")
	}
	return &a, nil
}

func (r *GormAttractionRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Attraction{}).Where("id = ?", id).Count(&count).Error
	return count > 0, wrap(err, "count attraction")
}

// DeleteByID removes the attraction together with its services in one transaction
func (r *GormAttractionRepository) DeleteByID(id uint64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Select("Services").Delete(&models.Attraction{ID: id}).Error
	})
	return wrap(err, "delete attraction")
}

func (r *GormAttractionRepository) LocationExists(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Location{}).Where("id = ?", id).Count(&count).Error
	return count > 0, wrap(err, "count location")
}

func (r *GormAttractionRepository) FindAllByTypeOrderByName(t *models.AttractionType) ([]models.Attraction, error) {
	return r.findAllByType(t, func(tx *gorm.DB) *gorm.DB { return tx.Order("attractions.name") })
}

func (r *GormAttractionRepository) FindAllByTypeOrderByID(t *models.AttractionType) ([]models.Attraction, error) {
	return r.findAllByType(t, func(tx *gorm.DB) *gorm.DB { return tx.Order("attractions.id") })
}

func (r *GormAttractionRepository) FindAllByTypeOrderByDescription(t *models.AttractionType) ([]models.Attraction, error) {
	return r.findAllByType(t, func(tx *gorm.DB) *gorm.DB { return tx.Order("attractions.description") })
}

func (r *GormAttractionRepository) FindAllByTypeOrderByCreationDate(t *models.AttractionType) ([]models.Attraction, error) {
	return r.findAllByType(t, func(tx *gorm.DB) *gorm.DB { return tx.Order("attractions.creation_date") })
}

func (r *GormAttractionRepository) FindAllByTypeOrderByLocation(t *models.AttractionType) ([]models.Attraction, error) {
	return r.findAllByType(t, func(tx *gorm.DB) *gorm.DB { return tx.Order("attractions.location_id") })
}

// FindAllByTypeOrderByServices orders by the smallest service id each attraction owns
func (r *GormAttractionRepository) FindAllByTypeOrderByServices(t *models.AttractionType) ([]models.Attraction, error) {
	return r.findAllByType(t, func(tx *gorm.DB) *gorm.DB {
		return tx.
			Select("attractions.*").
			Joins("left join services on services.attraction_id = attractions.id").
			Group("attractions.id").
			Order("min(services.id)")
	})
}

// findAllByType matches the type exactly; a nil type matches rows without a type
func (r *GormAttractionRepository) findAllByType(t *models.AttractionType, order func(tx *gorm.DB) *gorm.DB) ([]models.Attraction, error) {
	tx := r.db.Model(&models.Attraction{})
	if t == nil {
		tx = tx.Where("attractions.type IS NULL")
	} else {
		tx = tx.Where("attractions.type = ?", string(*t))
	}
	result := []models.Attraction{}
	err := order(tx).Preload("Location").Preload("Services", orderedServices).Find(&result).Error
	if err != nil {
		return nil, wrap(err, "list attractions")
	}
	return result, nil
}

func (r *GormAttractionRepository) FindByLocationName(name string) ([]models.Attraction, error) {
	found := []models.Attraction{}
	err := r.db.
		Joins("join locations on locations.id = attractions.location_id").
		Where("locations.name = ?", name).
		Order("attractions.id").
		Preload("Location").
		Preload("Services", orderedServices).
		Find(&found).Error
	if err != nil {
		return nil, wrap(err, "find attractions by location")
	}
	// MySQL collations compare case-insensitively, the match has to be exact
	result := []models.Attraction{}
	for _, a := range found {
		if a.Location != nil && a.Location.Name != nil && *a.Location.Name == name {
			result = append(result, a)
		}
	}
	return result, nil
}
