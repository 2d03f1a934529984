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

	"holistic/wellness-app/internal/api"
	"holistic/wellness-app/internal/config"
	"holistic/wellness-app/internal/emotion"
	"holistic/wellness-app/internal/mail"
	"holistic/wellness-app/internal/repository/mongo"
	"holistic/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Wellness App API
// @version 1.0
// @description API for weight-management planning, calorie tracking, activity and food logs, and emotion check-ins.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Wellness App Server...")

	// Optional .env for local development; real deployments set env vars.
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded.")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureAdminIndexes(ctx, appDB.Collection("admins"))
		mongo.EnsureTrackerIndexes(ctx, appDB.Collection("trackers"))
		mongo.EnsureActivityIndexes(ctx, appDB.Collection("activities"))
		mongo.EnsureNutritionIndexes(ctx, appDB.Collection("nutrition_entries"))
		mongo.EnsureEmotionTipIndexes(ctx, appDB.Collection("emotion_tips"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Outbound Integrations ---
	log.Println("Initializing mailer...")
	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize mailer: %v", err)
	}

	log.Println("Initializing emotion detector client...")
	detector, err := emotion.NewHTTPDetector(cfg.Emotion.DetectorURL, cfg.Emotion.Timeout)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize emotion detector: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	adminRepo := mongo.NewMongoAdminRepository(appDB)
	trackerRepo := mongo.NewMongoTrackerRepository(appDB)
	activityRepo := mongo.NewMongoActivityRepository(appDB)
	nutritionRepo := mongo.NewMongoNutritionRepository(appDB)
	emotionTipRepo := mongo.NewMongoEmotionTipRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, mailer, cfg.JWT.Secret, cfg.JWT.Expiration)
	trackerService := service.NewTrackerService(trackerRepo)
	activityService := service.NewActivityService(activityRepo, userRepo, mailer)
	nutritionService := service.NewNutritionService(nutritionRepo)
	emotionService := service.NewEmotionService(detector, emotionTipRepo)
	adminService := service.NewAdminService(adminRepo, userRepo, trackerRepo, cfg.JWT.Secret, cfg.JWT.Expiration)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, trackerService, activityService, nutritionService, emotionService, adminService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
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
