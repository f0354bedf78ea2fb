package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/viremo/viremo-be/internal/api"
	"github.com/viremo/viremo-be/internal/config"
	"github.com/viremo/viremo-be/internal/database"
	"github.com/viremo/viremo-be/internal/logger"
	"github.com/viremo/viremo-be/internal/services"
	"github.com/viremo/viremo-be/internal/storage"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up object storage for avatars
	store, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}

	// Set up services
	userService := services.NewUserService(db)
	taskService := services.NewTaskService(db)
	activityService := services.NewActivityService(db)
	avatarService := services.NewAvatarService(db, store)
	recommendService := services.NewRecommendService(cfg.RecommendURL)

	// Set up router
	router := api.NewRouter(userService, taskService, activityService, avatarService, recommendService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
