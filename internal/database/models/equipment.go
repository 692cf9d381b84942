package models

import (
	"time"

	"github.com/google/uuid"
)

// Equipment is a physical asset that maintenance requests are raised against
type Equipment struct {
	BaseModel
	Name               string          `json:"name" gorm:"not null;size:200"`
	SerialNumber       string          `json:"serialNumber" gorm:"not null;size:100;uniqueIndex:idx_equipment_serial_number"`
	Category           string          `json:"category" gorm:"not null;size:100"` // department
	Location           string          `json:"location" gorm:"not null;size:200"`
	Status             EquipmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'operational';index"`
	TeamID             *uuid.UUID      `json:"teamId,omitempty" gorm:"type:uuid;index"`
	PurchaseDate       *time.Time      `json:"purchaseDate,omitempty"`
	WarrantyExpiration *time.Time      `json:"warrantyExpiration,omitempty"`
	AssignedTechnician string          `json:"assignedTechnician,omitempty" gorm:"size:200"`
	Image              string          `json:"image,omitempty" gorm:"size:500"`
	LastMaintenance    *time.Time      `json:"lastMaintenance,omitempty"`
	NextMaintenance    *time.Time      `json:"nextMaintenance,omitempty"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Equipment
func (Equipment) TableName() string {
	return "equipment"
}
