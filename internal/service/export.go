package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportSheetName is the worksheet holding exported requests
const ExportSheetName = "Requests"

var exportHeaders = []interface{}{
	"ID", "Subject", "Equipment", "Serial Number", "Category", "Team", "Type", "Priority",
	"Status", "Assigned To", "Scheduled", "Due", "Completed", "Duration (h)", "Overdue", "Created",
}

// ExportXLSX renders every request as a spreadsheet, one row per request
func (s *MaintenanceRequestService) ExportXLSX(ctx context.Context) ([]byte, error) {
	requests, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(ExportSheetName, "A1", last, style); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := exportRow(&r)
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(ExportSheetName, "B", "C", 30)
	_ = f.SetColWidth(ExportSheetName, "D", "F", 20)
	_ = f.SetPanes(ExportSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(r *MaintenanceRequestResponse) []interface{} {
	serial := ""
	if r.Equipment != nil {
		serial = r.Equipment.SerialNumber
	}
	assignee := ""
	if r.AssignedTo != nil {
		assignee = r.AssignedTo.Name
	}
	duration := ""
	if r.DurationHours != nil {
		duration = fmt.Sprintf("%.2f", *r.DurationHours)
	}
	overdue := "no"
	if r.Overdue {
		overdue = "yes"
	}

	return []interface{}{
		r.ID.String(), r.Subject, r.EquipmentName, serial, r.Category, r.Team,
		string(r.Type), string(r.Priority), string(r.Status), assignee,
		formatDay(r.ScheduledDate), formatDay(r.DueDate), formatDay(r.CompletedDate),
		duration, overdue, r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
