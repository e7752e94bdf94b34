package services

import (
	"errors"
	"fmt"

	"github.com/Anieto86/LabLink/internal/database/repository"
	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/services/events"
	"github.com/Anieto86/LabLink/internal/utils"

	"gorm.io/gorm"
)

var (
	// ErrEquipmentNotFound is returned when equipment does not exist
	ErrEquipmentNotFound = errors.New("equipment not found")
	// ErrInvalidEquipmentStatus is returned for unknown status values
	ErrInvalidEquipmentStatus = errors.New("invalid equipment status")
)

type EquipmentService struct {
	equipmentRepo *repository.EquipmentRepository
	labRepo       *repository.LaboratoryRepository
	publisher     *events.Publisher
}

func NewEquipmentService(equipmentRepo *repository.EquipmentRepository, labRepo *repository.LaboratoryRepository, publisher *events.Publisher) *EquipmentService {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		labRepo:       labRepo,
		publisher:     publisher,
	}
}

// Create creates a new piece of equipment in a laboratory
func (s *EquipmentService) Create(req *models.CreateEquipmentRequest) (*models.Equipment, error) {
	status := req.Status
	if status == "" {
		status = models.EquipmentAvailable
	}
	if !status.Valid() {
		return nil, ErrInvalidEquipmentStatus
	}

	if _, err := s.labRepo.GetByID(req.LaboratoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLaboratoryNotFound
		}
		return nil, fmt.Errorf("failed to check laboratory: %w", err)
	}

	eq := &models.Equipment{
		Name:         req.Name,
		Type:         req.Type,
		LaboratoryID: req.LaboratoryID,
		Status:       status,
	}
	if err := s.equipmentRepo.Create(eq); err != nil {
		return nil, fmt.Errorf("failed to create equipment: %w", err)
	}

	if s.publisher != nil {
		s.publisher.PublishEquipmentEvent("equipment.created", eq.ID, string(eq.Status))
	}
	return eq, nil
}

// GetByID retrieves a piece of equipment by ID
func (s *EquipmentService) GetByID(id uint) (*models.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	return eq, nil
}

// GetAll returns equipment with pagination
func (s *EquipmentService) GetAll(page, pageSize int) ([]models.Equipment, int64, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)
	items, total, err := s.equipmentRepo.GetAll(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list equipment: %w", err)
	}
	return items, total, nil
}

// Update applies the changes in req to an existing piece of equipment
func (s *EquipmentService) Update(id uint, req *models.UpdateEquipmentRequest) (*models.Equipment, error) {
	eq, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		eq.Name = req.Name
	}
	if req.Type != "" {
		eq.Type = req.Type
	}
	statusChanged := false
	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, ErrInvalidEquipmentStatus
		}
		statusChanged = eq.Status != req.Status
		eq.Status = req.Status
	}

	if err := s.equipmentRepo.Update(eq); err != nil {
		return nil, fmt.Errorf("failed to update equipment: %w", err)
	}

	if statusChanged && s.publisher != nil {
		s.publisher.PublishEquipmentEvent("equipment.status_changed", eq.ID, string(eq.Status))
	}
	return eq, nil
}

// Delete removes a piece of equipment
func (s *EquipmentService) Delete(id uint) error {
	if err := s.equipmentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentNotFound
		}
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	return nil
}

// GetAllForExport returns the full equipment table for inventory export
func (s *EquipmentService) GetAllForExport() ([]models.Equipment, error) {
	items, _, err := s.equipmentRepo.GetAll(1, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment for export: %w", err)
	}
	return items, nil
}
