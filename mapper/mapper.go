// Package mapper copies fields between transfer objects and stored records.
// Nothing here validates or defaults: a nil field stays nil.
package mapper

import (
	"attractionapi/dto"
	"attractionapi/models"
)

func AttractionToDTO(a *models.Attraction) dto.AttractionDTO {
	return dto.AttractionDTO{
		ID:           a.ID,
		Name:         a.Name,
		CreationDate: a.CreationDate,
		Description:  a.Description,
		Type:         a.Type,
		Location:     locationToDTOPtr(a.Location),
		Services:     servicesToDTO(a.Services),
	}
}

func DTOToAttraction(d dto.AttractionDTO) models.Attraction {
	return models.Attraction{
		ID:           d.ID,
		Name:         d.Name,
		CreationDate: d.CreationDate,
		Description:  d.Description,
		Type:         d.Type,
		LocationID:   locationID(d.Location),
		Location:     dtoToLocationPtr(d.Location),
		Services:     dtoToServices(d.Services),
	}
}

func DTOToLocation(d dto.LocationDTO) models.Location {
	return models.Location{
		ID:         d.ID,
		Name:       d.Name,
		Population: d.Population,
		HasMetro:   d.HasMetro,
	}
}

func LocationToDTO(l *models.Location) dto.LocationDTO {
	return dto.LocationDTO{
		ID:         l.ID,
		Name:       l.Name,
		Population: l.Population,
		HasMetro:   l.HasMetro,
	}
}

func locationToDTOPtr(l *models.Location) *dto.LocationDTO {
	if l == nil {
		return nil
	}
	d := LocationToDTO(l)
	return &d
}

func dtoToLocationPtr(d *dto.LocationDTO) *models.Location {
	if d == nil {
		return nil
	}
	l := DTOToLocation(*d)
	return &l
}

// locationID is the foreign key of a nested location reference
func locationID(d *dto.LocationDTO) *uint64 {
	if d == nil {
		return nil
	}
	id := d.ID
	return &id
}

func servicesToDTO(services []models.Service) []dto.ServiceDTO {
	if services == nil {
		return nil
	}
	result := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		result = append(result, dto.ServiceDTO{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return result
}

func dtoToServices(services []dto.ServiceDTO) []models.Service {
	if services == nil {
		return nil
	}
	result := make([]models.Service, 0, len(services))
	for _, s := range services {
		result = append(result, models.Service{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	return result
}
