package models

import (
	"time"
)

// EquipmentStatus is the operational state of a piece of equipment
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in_use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentOutOfOrder  EquipmentStatus = "out_of_order"
	EquipmentRetired     EquipmentStatus = "retired"
)

// Valid reports whether the status is one of the known values
func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentInUse, EquipmentMaintenance, EquipmentOutOfOrder, EquipmentRetired:
		return true
	}
	return false
}

// Equipment represents a piece of laboratory equipment
type Equipment struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Name         string          `json:"name" gorm:"type:varchar(100);not null"`
	Type         string          `json:"type" gorm:"type:varchar(100)"`
	LaboratoryID uint            `json:"laboratory_id" gorm:"index"`
	Status       EquipmentStatus `json:"status" gorm:"type:varchar(20);default:'available';index"`
	// Relationships
	Laboratory Laboratory `json:"-" gorm:"foreignKey:LaboratoryID;references:ID"`
}

// TableName specifies the table name for the Equipment model
func (Equipment) TableName() string {
	return "equipment"
}

// CreateEquipmentRequest is the payload for creating equipment
type CreateEquipmentRequest struct {
	Name         string          `json:"name" binding:"required,min=2,max=100"`
	Type         string          `json:"type" binding:"required,min=2,max=100"`
	LaboratoryID uint            `json:"laboratory_id" binding:"required"`
	Status       EquipmentStatus `json:"status"`
}

// UpdateEquipmentRequest is the payload for updating equipment
type UpdateEquipmentRequest struct {
	Name   string          `json:"name" binding:"omitempty,min=2,max=100"`
	Type   string          `json:"type" binding:"omitempty,min=2,max=100"`
	Status EquipmentStatus `json:"status"`
}
