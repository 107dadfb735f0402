package handlers

import (
	"net/http"

	"attractionapi/dto"
	"attractionapi/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
)

type LocationManager interface {
	Create(d dto.LocationDTO) (*models.Location, error)
	Update(id uint64, population int64, hasMetro bool) (*models.Location, error)
}

type LocationHandler struct {
	service LocationManager
	log     zerolog.Logger
}

func NewLocationHandler(service LocationManager, log zerolog.Logger) *LocationHandler {
	return &LocationHandler{service: service, log: log}
}

func (h *LocationHandler) Create(c *gin.Context) {
	req := dto.LocationDTO{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	location, err := h.service.Create(req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// Update handles PUT /locations/:id/population/has_metro with {"population": n, "hasMetro": b}
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	req := dto.LocationUpdateRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	location, err := h.service.Update(id, *req.Population, *req.HasMetro)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, location)
}
