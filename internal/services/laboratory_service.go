package services

import (
	"errors"
	"fmt"

	"github.com/Anieto86/LabLink/internal/database/repository"
	"github.com/Anieto86/LabLink/internal/models"

	"gorm.io/gorm"
)

// ErrLaboratoryNotFound is returned when a referenced laboratory does not exist
var ErrLaboratoryNotFound = errors.New("laboratory not found")

type LaboratoryService struct {
	labRepo       *repository.LaboratoryRepository
	equipmentRepo *repository.EquipmentRepository
}

func NewLaboratoryService(labRepo *repository.LaboratoryRepository, equipmentRepo *repository.EquipmentRepository) *LaboratoryService {
	return &LaboratoryService{
		labRepo:       labRepo,
		equipmentRepo: equipmentRepo,
	}
}

// Create creates a new laboratory
func (s *LaboratoryService) Create(req *models.CreateLaboratoryRequest) (*models.Laboratory, error) {
	lab := &models.Laboratory{
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	if err := s.labRepo.Create(lab); err != nil {
		return nil, fmt.Errorf("failed to create laboratory: %w", err)
	}
	return lab, nil
}

// GetByID retrieves a laboratory by ID
func (s *LaboratoryService) GetByID(id uint) (*models.Laboratory, error) {
	lab, err := s.labRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLaboratoryNotFound
		}
		return nil, fmt.Errorf("failed to get laboratory: %w", err)
	}
	return lab, nil
}

// GetAll returns all laboratories
func (s *LaboratoryService) GetAll() ([]models.Laboratory, error) {
	labs, err := s.labRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list laboratories: %w", err)
	}
	return labs, nil
}

// GetEquipment returns all equipment assigned to a laboratory
func (s *LaboratoryService) GetEquipment(labID uint) ([]models.Equipment, error) {
	if _, err := s.GetByID(labID); err != nil {
		return nil, err
	}
	items, err := s.equipmentRepo.GetByLaboratoryID(labID)
	if err != nil {
		return nil, fmt.Errorf("failed to list laboratory equipment: %w", err)
	}
	return items, nil
}
