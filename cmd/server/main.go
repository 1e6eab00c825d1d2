package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "github.com/TangibleTNFT/tangible-marketplace/internal/api/http"
	"github.com/TangibleTNFT/tangible-marketplace/internal/config"
	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"
	"github.com/TangibleTNFT/tangible-marketplace/internal/metrics"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository/postgres"
	"github.com/TangibleTNFT/tangible-marketplace/internal/security"
	"github.com/TangibleTNFT/tangible-marketplace/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tangible Marketplace Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
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
	marketSvc := service.NewMarketplaceService(
		store.ListingRepository,
		store.AssetRepository,
		store.CategoryRepository,
		transferSvc,
		store,
	)
	priceSvc := service.NewPriceService(store.PriceRepository, store.AssetRepository, store.CategoryRepository)
	authSvc := service.NewAuthService(store.AccountRepository, tokenManager)

	// Initialize Metrics
	m := metrics.New()

	// Initialize HTTP handlers
	handlers := api.Handlers{
		Auth:        api.NewAuthHandler(authSvc),
		Rent:        api.NewRentHandler(rentSvc, m),
		Asset:       api.NewAssetHandler(assetSvc, priceSvc),
		Marketplace: api.NewMarketplaceHandler(marketSvc, m),
		Balance:     api.NewBalanceHandler(transferSvc),
	}
	router := api.NewRouter(handlers, tokenManager, m)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
