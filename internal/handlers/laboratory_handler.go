package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/services"
	"github.com/Anieto86/LabLink/internal/utils"

	"github.com/gin-gonic/gin"
)

type LaboratoryHandler struct {
	labService *services.LaboratoryService
}

func NewLaboratoryHandler(labService *services.LaboratoryService) *LaboratoryHandler {
	return &LaboratoryHandler{
		labService: labService,
	}
}

// CreateLaboratory godoc
// @Summary Create laboratory
// @Tags laboratories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateLaboratoryRequest true "Laboratory"
// @Success 201 {object} models.Laboratory
// @Failure 400 {object} map[string]interface{}
// @Router /laboratories [post]
func (h *LaboratoryHandler) CreateLaboratory(c *gin.Context) {
	var req models.CreateLaboratoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Validation error", "issues": err.Error()})
		return
	}

	lab, err := h.labService.Create(&req)
	if err != nil {
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, lab)
}

// GetLaboratory godoc
// @Summary Get laboratory by ID
// @Tags laboratories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Laboratory ID"
// @Success 200 {object} models.Laboratory
// @Failure 404 {object} map[string]interface{}
// @Router /laboratories/{id} [get]
func (h *LaboratoryHandler) GetLaboratory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid laboratory id"})
		return
	}

	lab, err := h.labService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLaboratoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Laboratory not found"})
			return
		}
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, lab)
}

// ListLaboratories godoc
// @Summary List laboratories
// @Tags laboratories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Laboratory
// @Router /laboratories [get]
func (h *LaboratoryHandler) ListLaboratories(c *gin.Context) {
	labs, err := h.labService.GetAll()
	if err != nil {
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, labs)
}

// GetLaboratoryEquipment godoc
// @Summary List equipment in a laboratory
// @Tags laboratories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Laboratory ID"
// @Success 200 {array} models.Equipment
// @Failure 404 {object} map[string]interface{}
// @Router /laboratories/{id}/equipment [get]
func (h *LaboratoryHandler) GetLaboratoryEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid laboratory id"})
		return
	}

	items, err := h.labService.GetEquipment(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLaboratoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Laboratory not found"})
			return
		}
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
