package handlers

import (
	"net/http"
	"strconv"

	"attractionapi/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	InvalidIDResponse     = Response{"invalid id"}
	InternalErrorResponse = Response{"internal error"}
)

// respondError maps service errors onto status codes: validation 400, not found 404, anything else 500
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, Response{validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, Response{notFoundErr.Message})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, InternalErrorResponse)
	}
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, InvalidIDResponse)
		return 0, false
	}
	return id, true
}

// RegisterRoutes wires the attraction, location and health end-points onto the router
func RegisterRoutes(router gin.IRouter, attractions *AttractionHandler, locations *LocationHandler, health *HealthHandler) {
	// Attraction handlers
	router.POST("/attractions", attractions.Create)
	router.GET("/attractions", attractions.List)
	router.GET("/attractions/:locationName", attractions.ListByLocation)
	router.PUT("/attractions/:id/description", attractions.UpdateDescription)
	router.DELETE("/attractions/:id", attractions.Delete)
	// Location handlers
	router.POST("/locations", locations.Create)
	router.PUT("/locations/:id/population/has_metro", locations.Update)
	// Misc
	router.GET("/health", health.Check)
}
