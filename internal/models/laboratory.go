package models

// Laboratory represents a laboratory facility
type Laboratory struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(100);not null"`
	Location string `json:"location" gorm:"type:varchar(200)"`
	Capacity int    `json:"capacity"`
	// Relationships
	Equipment []Equipment `json:"equipment,omitempty" gorm:"foreignKey:LaboratoryID;references:ID"`
}

// TableName specifies the table name for the Laboratory model
func (Laboratory) TableName() string {
	return "laboratories"
}

// CreateLaboratoryRequest is the payload for creating a laboratory
type CreateLaboratoryRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Location string `json:"location" binding:"omitempty,max=200"`
	Capacity int    `json:"capacity" binding:"omitempty,min=0"`
}
