package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/services"
	"github.com/Anieto86/LabLink/internal/services/excel"
	"github.com/Anieto86/LabLink/internal/utils"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	equipmentService *services.EquipmentService
	excelService     *excel.Service
}

func NewEquipmentHandler(equipmentService *services.EquipmentService, excelService *excel.Service) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
		excelService:     excelService,
	}
}

// CreateEquipment godoc
// @Summary Create equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} models.Equipment
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /equipment [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req models.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Validation error", "issues": err.Error()})
		return
	}

	eq, err := h.equipmentService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLaboratoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Laboratory not found"})
		case errors.Is(err, services.ErrInvalidEquipmentStatus):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid equipment status"})
		default:
			utils.CaptureError(err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, eq)
}

// GetEquipment godoc
// @Summary Get equipment by ID
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Success 200 {object} models.Equipment
// @Failure 404 {object} map[string]interface{}
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid equipment id"})
		return
	}

	eq, err := h.equipmentService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Equipment not found"})
			return
		}
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, eq)
}

// ListEquipment godoc
// @Summary List equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /equipment [get]
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	items, total, err := h.equipmentService.GetAll(page, pageSize)
	if err != nil {
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       items,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// UpdateEquipment godoc
// @Summary Update equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Param request body models.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} models.Equipment
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid equipment id"})
		return
	}

	var req models.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Validation error", "issues": err.Error()})
		return
	}

	eq, err := h.equipmentService.Update(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Equipment not found"})
		case errors.Is(err, services.ErrInvalidEquipmentStatus):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid equipment status"})
		default:
			utils.CaptureError(err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, eq)
}

// DeleteEquipment godoc
// @Summary Delete equipment
// @Tags equipment
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]interface{}
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid equipment id"})
		return
	}

	if err := h.equipmentService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Equipment not found"})
			return
		}
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportEquipment godoc
// @Summary Export equipment inventory
// @Description Download the equipment table as an Excel workbook
// @Tags equipment
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /equipment/export [get]
func (h *EquipmentHandler) ExportEquipment(c *gin.Context) {
	items, err := h.equipmentService.GetAllForExport()
	if err != nil {
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	buf, err := h.excelService.ExportEquipment(items)
	if err != nil {
		utils.CaptureError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+excel.ExportFilename(time.Now()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
