package dto

import "attractionapi/models"

// AttractionDTO is the request shape for POST /attractions and the result of a lookup by id.
type AttractionDTO struct {
	ID           uint64                 `json:"idAttraction"`
	Name         *string                `json:"name"`
	CreationDate *string                `json:"creationDate"`
	Description  *string                `json:"description"`
	Type         *models.AttractionType `json:"type"`
	Location     *LocationDTO           `json:"location"`
	Services     []ServiceDTO           `json:"services"`
}

type ServiceDTO struct {
	ID          uint64  `json:"idService"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
