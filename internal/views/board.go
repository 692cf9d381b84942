package views

import (
	"time"

	"gearguard-backend/internal/database/models"
)

var columnTitles = map[models.RequestStatus]string{
	models.RequestStatusNew:        "New",
	models.RequestStatusInProgress: "In Progress",
	models.RequestStatusRepaired:   "Repaired",
	models.RequestStatusScrap:      "Scrap",
}

// Card is a request placed on the board
type Card struct {
	Request *models.MaintenanceRequest
	Overdue bool
}

// Column is one kanban column. Cards keep the order of the input slice.
type Column struct {
	Status models.RequestStatus
	Title  string
	Cards  []Card
}

// Board groups requests into the four fixed columns in workflow order.
// Requests with an unknown status are left off the board.
func Board(requests []models.MaintenanceRequest, asOf time.Time) []Column {
	columns := make([]Column, len(models.RequestStatuses))
	index := make(map[models.RequestStatus]int, len(models.RequestStatuses))
	for i, status := range models.RequestStatuses {
		columns[i] = Column{Status: status, Title: columnTitles[status], Cards: []Card{}}
		index[status] = i
	}

	for i := range requests {
		r := &requests[i]
		col, ok := index[BoardColumn(r)]
		if !ok {
			continue
		}
		columns[col].Cards = append(columns[col].Cards, Card{Request: r, Overdue: IsOverdue(r, asOf)})
	}

	return columns
}
