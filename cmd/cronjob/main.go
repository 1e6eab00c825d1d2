package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/TangibleTNFT/tangible-marketplace/internal/config"
	"github.com/TangibleTNFT/tangible-marketplace/internal/jobs"
	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository/postgres"
	"github.com/TangibleTNFT/tangible-marketplace/internal/scheduler"
	"github.com/TangibleTNFT/tangible-marketplace/internal/security"
	"github.com/TangibleTNFT/tangible-marketplace/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-rent-notices', 'all-nightly', 'all-monthly')")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tangible Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	transferSvc := service.NewTransferService(store.BalanceRepository, cfg.Rent.OperatorAddress)
	rentSvc := service.NewRentService(
		store.RentRepository,
		store.AssetRepository,
		store.CategoryRepository,
		store.RentEventRepository,
		transferSvc,
		store,
		cfg.Rent.CustodyAddress,
	)
	assetSvc := service.NewAssetService(store.AssetRepository, store.CategoryRepository)
	authSvc := service.NewAuthService(store.AccountRepository, tokenManager)
	emailSvc := service.NewEmailService(cfg.Sendgrid.APIKey, cfg.Sendgrid.From, cfg.Sendgrid.FromName)

	jobServices := &jobs.Services{
		Email: emailSvc,
		Rent:  rentSvc,
		Asset: assetSvc,
		Auth:  authSvc,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-rent-notices":
		jobRunner.SendClaimableRentNotices()
	case "take-rent-snapshots":
		jobRunner.TakeRentSnapshots()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	case "all-monthly":
		jobRunner.RunAllMonthlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-rent-notices\n")
		fmt.Printf("  - take-rent-snapshots\n")
		fmt.Printf("  - all-nightly\n")
		fmt.Printf("  - all-monthly\n")
		os.Exit(1)
	}
}
