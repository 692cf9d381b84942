// Package views computes the read-side aggregates the board, calendar and
// equipment grid render. Nothing here is persisted. Dates are compared at
// day granularity in UTC.
package views

import (
	"time"

	"gearguard-backend/internal/database/models"

	"github.com/google/uuid"
)

// CalendarTag marks why a request shows up on a calendar day
type CalendarTag string

const (
	TagScheduled CalendarTag = "scheduled"
	TagDue       CalendarTag = "due"
	TagOverdue   CalendarTag = "overdue"
)

// OpenRequestCount counts the requests on equipmentID that are new or in progress
func OpenRequestCount(equipmentID uuid.UUID, requests []models.MaintenanceRequest) int {
	count := 0
	for i := range requests {
		if requests[i].EquipmentID == equipmentID && requests[i].Status.IsOpen() {
			count++
		}
	}
	return count
}

// OpenRequestCounts computes OpenRequestCount for every equipment in one pass.
// Equipment without open requests is absent from the map.
func OpenRequestCounts(requests []models.MaintenanceRequest) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for i := range requests {
		if requests[i].Status.IsOpen() {
			counts[requests[i].EquipmentID]++
		}
	}
	return counts
}

// IsOverdue reports whether the request has a due date strictly before the
// day of asOf and is still neither repaired nor scrapped
func IsOverdue(r *models.MaintenanceRequest, asOf time.Time) bool {
	if r.DueDate == nil || r.Status.IsClosed() {
		return false
	}
	return Day(*r.DueDate).Before(Day(asOf))
}

// CalendarBucket returns the tag the request carries on day, if it appears
// there at all. A scheduled date on that day wins over a due date.
func CalendarBucket(r *models.MaintenanceRequest, day, asOf time.Time) (CalendarTag, bool) {
	if r.ScheduledDate != nil && SameDay(*r.ScheduledDate, day) {
		return TagScheduled, true
	}
	if r.DueDate != nil && SameDay(*r.DueDate, day) {
		if IsOverdue(r, asOf) {
			return TagOverdue, true
		}
		return TagDue, true
	}
	return "", false
}

// BoardColumn maps a request onto its kanban column
func BoardColumn(r *models.MaintenanceRequest) models.RequestStatus {
	return r.Status
}

// Day truncates t to midnight UTC of its calendar date
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar date
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
