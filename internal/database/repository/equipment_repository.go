package repository

import (
	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/utils"

	"gorm.io/gorm"
)

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create creates a new piece of equipment
func (r *EquipmentRepository) Create(eq *models.Equipment) error {
	return r.db.Create(eq).Error
}

// GetByID retrieves a piece of equipment by ID
func (r *EquipmentRepository) GetByID(id uint) (*models.Equipment, error) {
	var eq models.Equipment
	err := r.db.First(&eq, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

// GetByLaboratoryID retrieves all equipment in a laboratory
func (r *EquipmentRepository) GetByLaboratoryID(laboratoryID uint) ([]models.Equipment, error) {
	var items []models.Equipment
	err := r.db.Where("laboratory_id = ?", laboratoryID).Find(&items).Error
	return items, err
}

// GetAll returns equipment with pagination
func (r *EquipmentRepository) GetAll(page, pageSize int) ([]models.Equipment, int64, error) {
	var items []models.Equipment
	var total int64
	query := r.db.Model(&models.Equipment{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(utils.CalculateOffset(page, pageSize)).Limit(pageSize).Order("id").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update updates a piece of equipment
func (r *EquipmentRepository) Update(eq *models.Equipment) error {
	return r.db.Save(eq).Error
}

// Delete removes a piece of equipment
func (r *EquipmentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Equipment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
