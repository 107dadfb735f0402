package dto

type LocationDTO struct {
	ID         uint64  `json:"idLocation"`
	Name       *string `json:"nameLocation"`
	Population *int64  `json:"populationLocation"`
	HasMetro   *bool   `json:"hasMetro"`
}

// LocationUpdateRequest is the body of PUT /locations/:id/population/has_metro
type LocationUpdateRequest struct {
	Population *int64 `json:"population" binding:"required"`
	HasMetro   *bool  `json:"hasMetro" binding:"required"`
}
