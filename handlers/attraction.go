package handlers

import (
	"net/http"

	"attractionapi/dto"
	"attractionapi/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
)

type AttractionManager interface {
	Create(d dto.AttractionDTO) (*models.Attraction, error)
	List(t *models.AttractionType, sortBy string) ([]models.Attraction, error)
	ListByLocationName(name string) ([]models.Attraction, error)
	UpdateDescription(id uint64, description *string) (*models.Attraction, error)
	Delete(id uint64) error
}

type AttractionListRequest struct {
	Type   string `form:"type"`
	SortBy string `form:"sortBy,default=name"`
}

type AttractionHandler struct {
	service AttractionManager
	log     zerolog.Logger
}

func NewAttractionHandler(service AttractionManager, log zerolog.Logger) *AttractionHandler {
	return &AttractionHandler{service: service, log: log}
}

func (h *AttractionHandler) Create(c *gin.Context) {
	req := dto.AttractionDTO{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	attraction, err := h.service.Create(req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, attraction)
}

// List handles GET /attractions?type=PARK&sortBy=name. Without a type only
// attractions stored without one are returned.
func (h *AttractionHandler) List(c *gin.Context) {
	req := AttractionListRequest{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	var attractionType *models.AttractionType
	if req.Type != "" {
		t, err := models.ParseAttractionType(req.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{err.Error()})
			return
		}
		attractionType = &t
	}
	attractions, err := h.service.List(attractionType, req.SortBy)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, attractions)
}

func (h *AttractionHandler) ListByLocation(c *gin.Context) {
	attractions, err := h.service.ListByLocationName(c.Param("locationName"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, attractions)
}

// UpdateDescription takes the new description as the raw request body
func (h *AttractionHandler) UpdateDescription(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	description := string(body)
	attraction, err := h.service.UpdateDescription(id, &description)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, attraction)
}

func (h *AttractionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusOK)
}
