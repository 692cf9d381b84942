package views

import (
	"time"

	"gearguard-backend/internal/database/models"
)

// CalendarEntry is a request shown in a calendar cell
type CalendarEntry struct {
	Request *models.MaintenanceRequest
	Tag     CalendarTag
}

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Entries []CalendarEntry
}

// CalendarMonth lays out the grid for month (any time within it): full weeks
// from the Sunday on or before the 1st to the Saturday on or after the last
// day. asOf decides overdue tags and which cell is today.
func CalendarMonth(requests []models.MaintenanceRequest, month, asOf time.Time) []CalendarDay {
	first := time.Date(month.UTC().Year(), month.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []CalendarDay
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cell := CalendarDay{
			Date:    day,
			InMonth: day.Month() == first.Month(),
			IsToday: SameDay(day, asOf),
			Entries: []CalendarEntry{},
		}
		for i := range requests {
			if tag, ok := CalendarBucket(&requests[i], day, asOf); ok {
				cell.Entries = append(cell.Entries, CalendarEntry{Request: &requests[i], Tag: tag})
			}
		}
		days = append(days, cell)
	}

	return days
}
