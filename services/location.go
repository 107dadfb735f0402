package services

import (
	"attractionapi/dto"
	"attractionapi/mapper"
	"attractionapi/models"
	"attractionapi/repository"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const negativePopulation = "Population cannot be negative."

type LocationService struct {
	repo repository.LocationRepository
	log  zerolog.Logger
}

func NewLocationService(repo repository.LocationRepository, log zerolog.Logger) *LocationService {
	return &LocationService{
		repo: repo,
		log:  log.With().Str("service", "location").Logger(),
	}
}

// Create stores a new location. Only the population is checked; a missing one is stored as null.
func (s *LocationService) Create(d dto.LocationDTO) (*models.Location, error) {
	s.log.Info().Interface("name", d.Name).Msg("adding location")
	if d.Population != nil && *d.Population < 0 {
		s.log.Error().Int64("population", *d.Population).Msg("failed to add location, population cannot be negative")
		return nil, validationErrorf(negativePopulation)
	}
	location := mapper.DTOToLocation(d)
	if err := s.repo.Save(&location); err != nil {
		return nil, err
	}
	s.log.Info().Uint64("id", location.ID).Msg("location added")
	return &location, nil
}

// Update overwrites both population and the metro flag
func (s *LocationService) Update(id uint64, population int64, hasMetro bool) (*models.Location, error) {
	s.log.Info().Uint64("id", id).Msg("updating location")
	location, err := s.repo.FindByID(id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		s.log.Warn().Uint64("id", id).Msg("location not found")
		return nil, notFoundErrorf("Location not found with id: %d", id)
	}
	if err != nil {
		return nil, err
	}
	if population < 0 {
		s.log.Error().Uint64("id", id).Int64("population", population).Msg("failed to update location, population cannot be negative")
		return nil, validationErrorf(negativePopulation)
	}
	location.Population = &population
	location.HasMetro = &hasMetro
	if err = s.repo.Save(location); err != nil {
		return nil, err
	}
	s.log.Info().Uint64("id", id).Msg("location updated")
	return location, nil
}
