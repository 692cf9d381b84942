package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignee is the technician a request is assigned to
type Assignee struct {
	Name   string `json:"name" gorm:"size:200"`
	Avatar string `json:"avatar" gorm:"size:200"`
}

// MaintenanceRequest is a ticket raised against exactly one piece of equipment
type MaintenanceRequest struct {
	BaseModel
	Subject       string          `json:"subject" gorm:"not null;size:200"`
	Description   string          `json:"description" gorm:"type:text"`
	EquipmentID   uuid.UUID       `json:"equipmentId" gorm:"type:uuid;not null;index"`
	Type          RequestType     `json:"type" gorm:"type:varchar(20);not null"`
	Priority      RequestPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Status        RequestStatus   `json:"status" gorm:"type:varchar(20);not null;default:'new';index"`
	AssignedTo    Assignee        `json:"assignedTo" gorm:"embedded;embeddedPrefix:assignee_"`
	ScheduledDate *time.Time      `json:"scheduledDate,omitempty"`
	CompletedDate *time.Time      `json:"completedDate,omitempty"`
	DurationHours *float64        `json:"durationHours,omitempty"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`

	// Relationships
	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for MaintenanceRequest
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}

// IsZero reports whether nobody is assigned
func (a Assignee) IsZero() bool {
	return a.Name == "" && a.Avatar == ""
}
