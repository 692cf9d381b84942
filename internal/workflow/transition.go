// Package workflow decides what a maintenance request status change implies.
// It never touches storage: callers persist the request and then execute the
// returned side effects.
package workflow

import (
	"time"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
)

// EffectKind names a side effect produced by a transition
type EffectKind string

const (
	// EffectSetEquipmentStatus sets the linked equipment's status
	EffectSetEquipmentStatus EffectKind = "set_equipment_status"
)

// SideEffect is a command a transition asks the caller to execute after the
// request itself has been saved
type SideEffect struct {
	Kind        EffectKind
	EquipmentID uuid.UUID
	Status      models.EquipmentStatus
}

// Transition is the outcome of applying a requested status to a prior one
type Transition struct {
	From models.RequestStatus
	To   models.RequestStatus

	// CompletedAt is set when the request enters repaired and must be stamped
	CompletedAt *time.Time

	Effects []SideEffect
}

// Changed reports whether the status actually moves
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Apply evaluates a status change of the request linked to equipmentID.
// prior is the persisted status ("" for a request being created), requested
// the status the caller asked for ("" when the update does not touch status).
// Rules are evaluated against prior only, so repeating a status is a no-op.
func Apply(prior, requested models.RequestStatus, equipmentID uuid.UUID, now time.Time) Transition {
	t := Transition{From: prior, To: prior}
	if requested == "" || requested == prior {
		return t
	}
	t.To = requested

	switch requested {
	case models.RequestStatusScrap:
		t.Effects = append(t.Effects, SideEffect{
			Kind:        EffectSetEquipmentStatus,
			EquipmentID: equipmentID,
			Status:      models.EquipmentStatusScrap,
		})
	case models.RequestStatusRepaired:
		stamp := now
		t.CompletedAt = &stamp
	}

	return t
}
