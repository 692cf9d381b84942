package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team is a maintenance crew responsible for the upkeep of equipment
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`

	// Relationships
	Members []TeamMember `json:"members" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember is one entry of a team roster. Position keeps the roster order.
type TeamMember struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID   uuid.UUID `json:"teamId" gorm:"type:uuid;not null;index"`
	Position int       `json:"position" gorm:"not null;default:0"`
	Name     string    `json:"name" gorm:"size:100"`
	Role     string    `json:"role" gorm:"size:100"`
	Avatar   string    `json:"avatar" gorm:"size:200"`
}

// BeforeCreate sets the UUID if not already set
func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
