package repository

import (
	"github.com/Anieto86/LabLink/internal/models"

	"gorm.io/gorm"
)

type LaboratoryRepository struct {
	db *gorm.DB
}

func NewLaboratoryRepository(db *gorm.DB) *LaboratoryRepository {
	return &LaboratoryRepository{db: db}
}

// Create creates a new laboratory
func (r *LaboratoryRepository) Create(lab *models.Laboratory) error {
	return r.db.Create(lab).Error
}

// GetByID retrieves a laboratory by ID
func (r *LaboratoryRepository) GetByID(id uint) (*models.Laboratory, error) {
	var lab models.Laboratory
	err := r.db.First(&lab, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lab, nil
}

// GetAll returns all laboratories
func (r *LaboratoryRepository) GetAll() ([]models.Laboratory, error) {
	var labs []models.Laboratory
	err := r.db.Find(&labs).Error
	return labs, err
}
