package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gearguard-backend/internal/config"
	"gearguard-backend/internal/database"
	"gearguard-backend/internal/database/models"
	"gearguard-backend/internal/workflow"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name    string       `yaml:"name"`
	Members []MemberData `yaml:"members"`
}

type MemberData struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar"`
}

type EquipmentData struct {
	Name               string `yaml:"name"`
	SerialNumber       string `yaml:"serial_number"`
	Category           string `yaml:"category"`
	Location           string `yaml:"location"`
	Status             string `yaml:"status"`
	TeamName           string `yaml:"team_name,omitempty"`
	PurchaseDate       string `yaml:"purchase_date,omitempty"`
	WarrantyExpiration string `yaml:"warranty_expiration,omitempty"`
	AssignedTechnician string `yaml:"assigned_technician,omitempty"`
}

// RequestData places dates relative to the load day so the board and calendar
// always have something current to show
type RequestData struct {
	Subject         string     `yaml:"subject"`
	SerialNumber    string     `yaml:"equipment_serial_number"`
	Type            string     `yaml:"type"`
	Priority        string     `yaml:"priority"`
	Status          string     `yaml:"status"`
	Description     string     `yaml:"description,omitempty"`
	AssignedTo      MemberData `yaml:"assigned_to,omitempty"`
	ScheduledInDays *int       `yaml:"scheduled_in_days,omitempty"`
	DueInDays       *int       `yaml:"due_in_days,omitempty"`
	DurationHours   *float64   `yaml:"duration_hours,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type EquipmentFile struct {
	Equipment []EquipmentData `yaml:"equipment"`
}

type RequestsFile struct {
	Requests []RequestData `yaml:"requests"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data", time.Now().UTC()); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM query logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string, today time.Time) error {
	var teamsFile TeamsFile
	if err := loadYAML(dataDir, "teams", &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var equipmentFile EquipmentFile
	if err := loadYAML(dataDir, "equipment", &equipmentFile); err != nil {
		return fmt.Errorf("failed to load equipment: %w", err)
	}
	var requestsFile RequestsFile
	if err := loadYAML(dataDir, "requests", &requestsFile); err != nil {
		return fmt.Errorf("failed to load requests: %w", err)
	}

	// Create teams first
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teamsFile.Teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teamsFile.Teams))

	// Create equipment
	equipmentMap := make(map[string]*models.Equipment)
	equipmentCreated := 0
	for _, equipmentData := range equipmentFile.Equipment {
		equipment, created, err := createEquipment(db, equipmentData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create equipment %s: %w", equipmentData.SerialNumber, err)
		}
		equipmentMap[equipmentData.SerialNumber] = equipment
		if created {
			equipmentCreated++
		}
	}
	log.Printf("Equipment: %d created, %d total", equipmentCreated, len(equipmentFile.Equipment))

	// Create requests
	requestCreated := 0
	for _, requestData := range requestsFile.Requests {
		created, err := createRequest(db, requestData, equipmentMap, today)
		if err != nil {
			log.Printf("Warning: failed to create request %q: %v", requestData.Subject, err)
			continue // Continue with other requests
		}
		if created {
			requestCreated++
		}
	}
	log.Printf("Requests: %d created, %d total", requestCreated, len(requestsFile.Requests))

	return nil
}

// loadYAML decodes the *.yaml file under dataDir whose name mentions kind into out
func loadYAML(dataDir, kind string, out interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, out)
	})
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	err := db.Where("name = ?", teamData.Name).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{Name: teamData.Name}
	for i, m := range teamData.Members {
		team.Members = append(team.Members, models.TeamMember{
			Position: i,
			Name:     m.Name,
			Role:     m.Role,
			Avatar:   m.Avatar,
		})
	}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func createEquipment(db *gorm.DB, data EquipmentData, teamMap map[string]*models.Team) (*models.Equipment, bool, error) {
	var equipment models.Equipment
	err := db.Where("serial_number = ?", data.SerialNumber).First(&equipment).Error
	if err == nil {
		return &equipment, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query equipment: %w", err)
	}

	status := models.EquipmentStatusOperational
	if data.Status != "" {
		status = models.EquipmentStatus(data.Status)
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", data.Status)
	}

	equipment = models.Equipment{
		Name:               data.Name,
		SerialNumber:       data.SerialNumber,
		Category:           data.Category,
		Location:           data.Location,
		Status:             status,
		AssignedTechnician: data.AssignedTechnician,
	}
	if data.TeamName != "" {
		team := teamMap[data.TeamName]
		if team == nil {
			return nil, false, fmt.Errorf("team %s not found", data.TeamName)
		}
		equipment.TeamID = &team.ID
	}
	if equipment.PurchaseDate, err = parseDay(data.PurchaseDate); err != nil {
		return nil, false, err
	}
	if equipment.WarrantyExpiration, err = parseDay(data.WarrantyExpiration); err != nil {
		return nil, false, err
	}

	if err := db.Omit("Team").Create(&equipment).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create equipment: %w", err)
	}
	return &equipment, true, nil
}

// createRequest inserts the request unless one with the same subject already
// exists on the equipment. A scrapped request also scraps its equipment.
func createRequest(db *gorm.DB, data RequestData, equipmentMap map[string]*models.Equipment, today time.Time) (bool, error) {
	equipment := equipmentMap[data.SerialNumber]
	if equipment == nil {
		return false, fmt.Errorf("equipment %s not found", data.SerialNumber)
	}

	var count int64
	if err := db.Model(&models.MaintenanceRequest{}).
		Where("subject = ? AND equipment_id = ?", data.Subject, equipment.ID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query request: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	request, effects, err := buildRequest(data, equipment.ID, today)
	if err != nil {
		return false, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Equipment").Create(&request).Error; err != nil {
			return err
		}
		for _, effect := range effects {
			if effect.Kind != workflow.EffectSetEquipmentStatus {
				continue
			}
			if err := tx.Model(&models.Equipment{}).
				Where("id = ?", effect.EquipmentID).
				Update("status", effect.Status).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	return true, nil
}

// buildRequest turns a seed row into a request whose initial status has gone
// through the workflow, returning the effects to run alongside the insert
func buildRequest(data RequestData, equipmentID uuid.UUID, today time.Time) (models.MaintenanceRequest, []workflow.SideEffect, error) {
	request := models.MaintenanceRequest{
		Subject:       data.Subject,
		Description:   data.Description,
		EquipmentID:   equipmentID,
		Type:          models.RequestType(data.Type),
		Priority:      models.RequestPriorityMedium,
		AssignedTo:    models.Assignee{Name: data.AssignedTo.Name, Avatar: data.AssignedTo.Avatar},
		ScheduledDate: offsetDay(today, data.ScheduledInDays),
		DueDate:       offsetDay(today, data.DueInDays),
		DurationHours: data.DurationHours,
	}
	if data.Priority != "" {
		request.Priority = models.RequestPriority(data.Priority)
	}
	requested := models.RequestStatusNew
	if data.Status != "" {
		requested = models.RequestStatus(data.Status)
	}
	if !request.Type.IsValid() || !request.Priority.IsValid() || !requested.IsValid() {
		return request, nil, fmt.Errorf("invalid type, priority or status")
	}

	transition := workflow.Apply("", requested, equipmentID, today)
	request.Status = transition.To
	request.CompletedDate = transition.CompletedAt
	return request, transition.Effects, nil
}

func parseDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return &t, nil
}

func offsetDay(today time.Time, days *int) *time.Time {
	if days == nil {
		return nil
	}
	t := today.AddDate(0, 0, *days)
	return &t
}
