package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gearguard-backend/internal/api/routes"
	"gearguard-backend/internal/config"
	"gearguard-backend/internal/database"
	"gearguard-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "gearguard-backend/docs" // This is needed for swag
)

//	@title			GearGuard Maintenance API
//	@version		1.0
//	@description	Backend API for GearGuard: equipment registry, maintenance teams, maintenance requests with the scrap cascade, and the kanban board and calendar views.

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5000
//	@BasePath	/

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	cache := connectRedis(cfg.RedisURL)
	if cache != nil {
		defer cache.Close()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	services := routes.NewServices(db, cfg, cache)

	if cfg.ReconcileOnStart {
		result, err := services.Requests.ReconcileScrappedEquipment(context.Background())
		if err != nil {
			logrus.WithError(err).Error("Startup reconciliation did not complete")
		} else if len(result.Updated) > 0 {
			logrus.WithField("updated", len(result.Updated)).Warn("Startup reconciliation scrapped equipment left behind by interrupted cascades")
		}
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, cache, services)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Shutdown complete")
}

// connectRedis returns nil when url is empty or the server is unreachable;
// the team directory is then read straight from Postgres
func connectRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		logrus.WithError(err).Warn("Invalid REDIS_URL, team cache disabled")
		return nil
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis unreachable, team cache disabled")
		_ = client.Close()
		return nil
	}
	return client
}
