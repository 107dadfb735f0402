// Package seed loads locations together with their attractions and services
// from a YAML fixture file. Every record goes through the management services,
// so the usual validation applies and the first rejected record stops the load.
package seed

import (
	"io"

	"attractionapi/dto"
	"attractionapi/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type File struct {
	Locations   []Location   `yaml:"locations"`
	Attractions []Attraction `yaml:"attractions"` // attractions without a location
}

type Location struct {
	Name        *string      `yaml:"name"`
	Population  *int64       `yaml:"population"`
	HasMetro    *bool        `yaml:"hasMetro"`
	Attractions []Attraction `yaml:"attractions"`
}

type Attraction struct {
	Name         *string   `yaml:"name"`
	CreationDate *string   `yaml:"creationDate"`
	Description  *string   `yaml:"description"`
	Type         string    `yaml:"type"`
	Services     []Service `yaml:"services"`
}

type Service struct {
	Name        *string `yaml:"name"`
	Description *string `yaml:"description"`
}

type LocationCreator interface {
	Create(d dto.LocationDTO) (*models.Location, error)
}

type AttractionCreator interface {
	Create(d dto.AttractionDTO) (*models.Attraction, error)
}

type Result struct {
	Locations   int
	Attractions int
}

type Loader struct {
	locations   LocationCreator
	attractions AttractionCreator
	log         zerolog.Logger
}

func NewLoader(locations LocationCreator, attractions AttractionCreator, log zerolog.Logger) *Loader {
	return &Loader{locations: locations, attractions: attractions, log: log}
}

func Parse(r io.Reader) (*File, error) {
	f := File{}
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode seed file")
	}
	return &f, nil
}

func (l *Loader) Load(r io.Reader) (Result, error) {
	result := Result{}
	f, err := Parse(r)
	if err != nil {
		return result, err
	}
	for i, loc := range f.Locations {
		created, err := l.locations.Create(dto.LocationDTO{Name: loc.Name, Population: loc.Population, HasMetro: loc.HasMetro})
		if err != nil {
			return result, errors.Wrapf(err, "location #%d", i+1)
		}
		result.Locations++
		for j, a := range loc.Attractions {
			if err = l.createAttraction(a, &dto.LocationDTO{ID: created.ID}); err != nil {
				return result, errors.Wrapf(err, "location #%d attraction #%d", i+1, j+1)
			}
			result.Attractions++
		}
	}
	for i, a := range f.Attractions {
		if err = l.createAttraction(a, nil); err != nil {
			return result, errors.Wrapf(err, "attraction #%d", i+1)
		}
		result.Attractions++
	}
	l.log.Info().Int("locations", result.Locations).Int("attractions", result.Attractions).Msg("seed loaded")
	return result, nil
}

func (l *Loader) createAttraction(a Attraction, location *dto.LocationDTO) error {
	d := dto.AttractionDTO{
		Name:         a.Name,
		CreationDate: a.CreationDate,
		Description:  a.Description,
		Location:     location,
	}
	if a.Type != "" {
		t, err := models.ParseAttractionType(a.Type)
		if err != nil {
			return err
		}
		d.Type = &t
	}
	for _, s := range a.Services {
		d.Services = append(d.Services, dto.ServiceDTO{Name: s.Name, Description: s.Description})
	}
	_, err := l.attractions.Create(d)
	return err
}
