package services

import (
	"attractionapi/dto"
	"attractionapi/mapper"
	"attractionapi/models"
	"attractionapi/repository"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	SortByName        = "name"
	SortByID          = "id"
	SortByDescription = "description"
	SortByDate        = "date"
	SortByLocation    = "location"
	SortByService     = "service"
)

var validSortOptions = []string{SortByName, SortByID, SortByDescription, SortByDate, SortByLocation, SortByService}

type AttractionService struct {
	repo repository.AttractionRepository
	log  zerolog.Logger
}

func NewAttractionService(repo repository.AttractionRepository, log zerolog.Logger) *AttractionService {
	return &AttractionService{
		repo: repo,
		log:  log.With().Str("service", "attraction").Logger(),
	}
}

// Create stores a new attraction. Name and description are required and a
// nested location must reference a stored one by id; locations are created
// only through LocationService.
func (s *AttractionService) Create(d dto.AttractionDTO) (*models.Attraction, error) {
	if d.Name == nil || d.Description == nil {
		s.log.Error().Msg("attraction name or description is null")
		return nil, validationErrorf("Name and description cannot be null")
	}
	if d.Location != nil {
		exists, err := s.repo.LocationExists(d.Location.ID)
		if err != nil {
			return nil, err
		}
		if !exists {
			s.log.Error().Uint64("location", d.Location.ID).Msg("attraction references an unknown location")
			return nil, notFoundErrorf("Location not found with id: %d", d.Location.ID)
		}
	}
	attraction := mapper.DTOToAttraction(d)
	if err := s.repo.Save(&attraction); err != nil {
		return nil, err
	}
	saved, err := s.repo.FindByID(attraction.ID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint64("id", saved.ID).Str("name", *saved.Name).Msg("attraction saved")
	return saved, nil
}

func (s *AttractionService) GetByID(id uint64) (*dto.AttractionDTO, error) {
	s.log.Info().Uint64("id", id).Msg("get attraction")
	attraction, err := s.find(id)
	if err != nil {
		return nil, err
	}
	result := mapper.AttractionToDTO(attraction)
	return &result, nil
}

// List returns attractions of the given type ordered by sortBy. A nil type
// selects attractions that have no type.
func (s *AttractionService) List(t *models.AttractionType, sortBy string) ([]models.Attraction, error) {
	s.log.Info().Interface("type", t).Str("sortBy", sortBy).Msg("list attractions")
	if err := s.validateSortBy(sortBy); err != nil {
		return nil, err
	}
	return s.fetchBySort(t, sortBy)
}

func (s *AttractionService) validateSortBy(sortBy string) error {
	for _, option := range validSortOptions {
		if option == sortBy {
			return nil
		}
	}
	s.log.Error().Str("sortBy", sortBy).Msg("invalid sortBy parameter")
	return validationErrorf("Invalid sortBy parameter: %s", sortBy)
}

func (s *AttractionService) fetchBySort(t *models.AttractionType, sortBy string) ([]models.Attraction, error) {
	switch sortBy {
	case SortByName:
		return s.repo.FindAllByTypeOrderByName(t)
	case SortByID:
		return s.repo.FindAllByTypeOrderByID(t)
	case SortByDescription:
		return s.repo.FindAllByTypeOrderByDescription(t)
	case SortByDate:
		return s.repo.FindAllByTypeOrderByCreationDate(t)
	case SortByLocation:
		return s.repo.FindAllByTypeOrderByLocation(t)
	case SortByService:
		return s.repo.FindAllByTypeOrderByServices(t)
	default:
		// only reachable if validSortOptions gains a token without a branch here
		return s.repo.FindAllByTypeOrderByName(t)
	}
}

// ListByLocationName fails with NotFoundError instead of returning an empty list
func (s *AttractionService) ListByLocationName(name string) ([]models.Attraction, error) {
	s.log.Info().Str("location", name).Msg("list attractions by location")
	attractions, err := s.repo.FindByLocationName(name)
	if err != nil {
		return nil, err
	}
	if len(attractions) == 0 {
		s.log.Error().Str("location", name).Msg("no attractions found for location")
		return nil, notFoundErrorf("No attractions found for location: %s", name)
	}
	return attractions, nil
}

func (s *AttractionService) UpdateDescription(id uint64, description *string) (*models.Attraction, error) {
	s.log.Info().Uint64("id", id).Msg("update attraction description")
	if description == nil || *description == "" {
		s.log.Error().Uint64("id", id).Msg("description is null or empty")
		return nil, validationErrorf("Description cannot be null or empty")
	}
	attraction, err := s.find(id)
	if err != nil {
		return nil, err
	}
	attraction.Description = description
	if err = s.repo.Save(attraction); err != nil {
		return nil, err
	}
	s.log.Info().Uint64("id", id).Msg("attraction updated")
	return attraction, nil
}

func (s *AttractionService) Delete(id uint64) error {
	s.log.Info().Uint64("id", id).Msg("delete attraction")
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		s.log.Error().Uint64("id", id).Msg("attraction not found")
		return attractionNotFound(id)
	}
	if err = s.repo.DeleteByID(id); err != nil {
		return err
	}
	s.log.Info().Uint64("id", id).Msg("attraction deleted")
	return nil
}

func (s *AttractionService) find(id uint64) (*models.Attraction, error) {
	attraction, err := s.repo.FindByID(id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		s.log.Error().Uint64("id", id).Msg("attraction not found")
		return nil, attractionNotFound(id)
	}
	return attraction, err
}

func attractionNotFound(id uint64) *NotFoundError {
	return notFoundErrorf("Attraction not found with id: %d", id)
}
