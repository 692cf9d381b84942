package routes

import (
	"gearguard-backend/internal/api/handlers"
	"gearguard-backend/internal/api/middleware"
	"gearguard-backend/internal/config"
	"gearguard-backend/internal/logger"
	"gearguard-backend/internal/repository"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the application services shared by the router and startup tasks
type Services struct {
	Equipment *service.EquipmentService
	Teams     *service.TeamService
	Requests  *service.MaintenanceRequestService
	Views     *service.ViewService
}

// NewServices wires repositories into services. The team directory is served
// through Redis when cache is non-nil.
func NewServices(db *gorm.DB, cfg *config.Config, cache *redis.Client) *Services {
	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	var teamRepo repository.TeamRepositoryInterface = repository.NewTeamRepository(db)
	if cache != nil {
		teamRepo = repository.NewCachedTeamRepository(teamRepo, cache, cfg.TeamCacheTTL)
		logger.New().WithField("ttl", cfg.TeamCacheTTL.String()).Info("Team directory cache enabled")
	}
	equipmentRepo := repository.NewEquipmentRepository(db)
	requestRepo := repository.NewMaintenanceRequestRepository(db)

	// Initialize services
	requestService := service.NewMaintenanceRequestService(requestRepo, equipmentRepo, teamRepo, validator)
	return &Services{
		Equipment: service.NewEquipmentService(equipmentRepo, requestRepo, teamRepo, validator),
		Teams:     service.NewTeamService(teamRepo, validator),
		Requests:  requestService,
		Views:     service.NewViewService(requestService),
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, cache *redis.Client, services *Services) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cache)
	equipmentHandler := handlers.NewEquipmentHandler(services.Equipment)
	teamHandler := handlers.NewTeamHandler(services.Teams)
	requestHandler := handlers.NewMaintenanceRequestHandler(services.Requests)
	viewHandler := handlers.NewViewHandler(services.Views)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		equipments := api.Group("/equipments")
		{
			equipments.GET("", equipmentHandler.ListEquipment)
			equipments.POST("", equipmentHandler.CreateEquipment)
			equipments.GET("/:id", equipmentHandler.GetEquipment)
			equipments.PATCH("/:id", equipmentHandler.UpdateEquipment)
		}

		requests := api.Group("/requests")
		{
			requests.GET("", requestHandler.ListRequests)
			requests.POST("", requestHandler.CreateRequest)
			requests.GET("/export", requestHandler.ExportRequests)
			requests.POST("/reconcile", requestHandler.ReconcileEquipment)
			requests.GET("/:id", requestHandler.GetRequest)
			requests.PATCH("/:id", requestHandler.UpdateRequest)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
		}

		api.GET("/board", viewHandler.GetBoard)
		api.GET("/calendar", viewHandler.GetCalendar)
	}

	return router
}
