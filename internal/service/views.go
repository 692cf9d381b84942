package service

import (
	"context"
	"time"

	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/views"

	"github.com/google/uuid"
)

// ViewService serves the kanban board and the calendar
type ViewService struct {
	requests *MaintenanceRequestService
	now      func() time.Time
}

// Ensure ViewService implements ViewServiceInterface
var _ ViewServiceInterface = (*ViewService)(nil)

// NewViewService creates a view service reading through the request service
func NewViewService(requests *MaintenanceRequestService) *ViewService {
	return &ViewService{requests: requests, now: time.Now}
}

// WithClock replaces the time source used when no asOf is given
func (s *ViewService) WithClock(now func() time.Time) *ViewService {
	s.now = now
	return s
}

// BoardColumn is one of the four fixed columns
type BoardColumn struct {
	Status models.RequestStatus         `json:"status"`
	Title  string                       `json:"title"`
	Count  int                          `json:"count"`
	Cards  []MaintenanceRequestResponse `json:"cards"`
}

// BoardResponse is the kanban board as of a day
type BoardResponse struct {
	AsOf    time.Time     `json:"asOf"`
	Columns []BoardColumn `json:"columns"`
}

// CalendarEntry is a request shown on a calendar day
type CalendarEntry struct {
	Tag     views.CalendarTag          `json:"tag"`
	Request MaintenanceRequestResponse `json:"request"`
}

// CalendarDay is one cell of the month grid
type CalendarDay struct {
	Date    string          `json:"date"`
	InMonth bool            `json:"inMonth"`
	IsToday bool            `json:"isToday"`
	Entries []CalendarEntry `json:"entries"`
}

// CalendarResponse is a month grid of full weeks, Sunday first
type CalendarResponse struct {
	Month string        `json:"month"`
	AsOf  time.Time     `json:"asOf"`
	Days  []CalendarDay `json:"days"`
}

// GetBoard groups every request into its column
func (s *ViewService) GetBoard(ctx context.Context, asOf time.Time) (*BoardResponse, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	asOf = asOf.UTC()

	requests, index, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	board := &BoardResponse{AsOf: asOf}
	for _, col := range views.Board(requests, asOf) {
		column := BoardColumn{Status: col.Status, Title: col.Title, Count: len(col.Cards), Cards: make([]MaintenanceRequestResponse, len(col.Cards))}
		for i, card := range col.Cards {
			column.Cards[i] = index[card.Request.ID]
			column.Cards[i].Overdue = card.Overdue
		}
		board.Columns = append(board.Columns, column)
	}
	return board, nil
}

// GetCalendar lays out the month containing month
func (s *ViewService) GetCalendar(ctx context.Context, month, asOf time.Time) (*CalendarResponse, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}
	asOf = asOf.UTC()
	if month.IsZero() {
		month = asOf
	}

	requests, index, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	grid := views.CalendarMonth(requests, month, asOf)
	calendar := &CalendarResponse{
		Month: month.UTC().Format("2006-01"),
		AsOf:  asOf,
		Days:  make([]CalendarDay, len(grid)),
	}
	for i, cell := range grid {
		day := CalendarDay{
			Date:    cell.Date.Format("2006-01-02"),
			InMonth: cell.InMonth,
			IsToday: cell.IsToday,
			Entries: make([]CalendarEntry, len(cell.Entries)),
		}
		for j, entry := range cell.Entries {
			request := index[entry.Request.ID]
			request.Overdue = views.IsOverdue(entry.Request, asOf)
			day.Entries[j] = CalendarEntry{Tag: entry.Tag, Request: request}
		}
		calendar.Days[i] = day
	}
	return calendar, nil
}

// load returns the raw requests and their joined responses keyed by request ID
func (s *ViewService) load(ctx context.Context) ([]models.MaintenanceRequest, map[uuid.UUID]MaintenanceRequestResponse, error) {
	requests, err := s.requests.repo.GetAll(ctx)
	if err != nil {
		return nil, nil, storageError("failed to list requests", err, nil)
	}
	joined, err := s.requests.join(ctx, requests, views.OpenRequestCounts(requests))
	if err != nil {
		return nil, nil, err
	}
	index := make(map[uuid.UUID]MaintenanceRequestResponse, len(joined))
	for _, r := range joined {
		index[r.ID] = r
	}
	return requests, index, nil
}
