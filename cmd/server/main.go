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

	"vidhost/internal/api"
	"vidhost/internal/config"
	"vidhost/internal/repository/gormdb"
	"vidhost/internal/service"
	"vidhost/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting video hosting server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	db, err := gormdb.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer func() {
		log.Println("Closing database connection...")
		if err := gormdb.DisconnectDB(db); err != nil {
			log.Printf("ERROR: Failed to close database: %v", err)
		}
	}()
	if err := gormdb.Migrate(db); err != nil {
		log.Fatalf("FATAL: Could not run database migrations: %v", err)
	}
	log.Println("Database connection established.")

	// --- Initialize Storage ---
	var objectStorage storage.ObjectStorage
	if cfg.S3.Enabled() {
		objectStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		// The app still serves listings; only uploads and deletes will fail.
		log.Println("WARNING: Object storage credentials missing, uploads are disabled.")
		objectStorage = storage.NewDisabledStorage()
	}

	// --- Initialize Repositories & Services ---
	videoRepo := gormdb.NewVideoRepository(db)
	videoService := service.NewVideoService(videoRepo, objectStorage, cfg.S3.PublicBaseURL)
	authService := service.NewAuthService(cfg.Admin.Password, cfg.Session.Secret, cfg.Session.TTL)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	router.MaxMultipartMemory = 32 << 20
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	log.Println("Setting up routes...")
	api.SetupRoutes(router, cfg.Server.MaxUploadSize, authService, videoService)

	// --- Start HTTP Server ---
	// No overall read deadline: video uploads can legitimately take minutes.
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
