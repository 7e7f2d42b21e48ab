package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/rs/zerolog/log"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/analysis"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/config"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/database"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/kite"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/logger"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/marketref"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/repository"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/scheduler"
	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Configure logging
	appLog := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobal(appLog)

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	log.Info().Str("path", cfg.Database.Path).Msg("Connected to database")

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	// Load the market reference table
	marketRef, err := loadMarketRef(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load market reference table")
	}
	log.Info().Int("symbols", marketRef.Symbols()).Msg("Market reference table loaded")

	// Decode the broker token encryption key when configured. Leaving the
	// broker unconfigured is supported: broker endpoints report 503 while
	// everything else keeps working.
	var fernetKeys []*fernet.Key
	if cfg.Broker.FernetKey != "" {
		fernetKeys, err = fernet.DecodeKeys(cfg.Broker.FernetKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to decode FERNET_KEY")
		}
	}

	var kiteClient kite.Client
	if cfg.Broker.APIKey != "" && cfg.Broker.APISecret != "" {
		kiteClient = kite.NewConnectClient(cfg.Broker.BaseURL, cfg.Broker.APIKey, cfg.Broker.APISecret)
	} else {
		log.Warn().Msg("Broker credentials not set, broker endpoints disabled")
	}

	// Create repositories
	investmentRepo := repository.NewInvestmentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	investmentService := service.NewInvestmentService(investmentRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	goalService := service.NewGoalService(goalRepo)
	profileService := service.NewProfileService(profileRepo)
	brokerService := service.NewBrokerService(
		sessionRepo,
		holdingRepo,
		kiteClient,
		marketRef,
		fernetKeys,
		appLog,
	)

	engine := analysis.NewEngine(cfg.Analysis, marketRef)
	analysisService := service.NewAnalysisService(
		engine,
		investmentRepo,
		expenseRepo,
		goalRepo,
		profileRepo,
		holdingRepo,
		reportRepo,
		appLog,
	)

	// Replay persisted reports into the in-memory history
	if err := analysisService.LoadHistory(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load report history")
	}

	// Start the background sync scheduler
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(appLog)
		syncJob := scheduler.NewHoldingsSyncJob(brokerService, appLog)
		if err := sched.AddJob(cfg.Scheduler.SyncSchedule, syncJob); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Scheduler.SyncSchedule).Msg("Failed to register holdings sync job")
		}
		sched.Start()
	}

	// Create router
	router := api.NewRouter(
		systemService,
		investmentService,
		expenseService,
		goalService,
		profileService,
		brokerService,
		analysisService,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// loadMarketRef builds the classification provider, preferring a local
// override file when MARKET_REF_PATH is set.
func loadMarketRef(cfg *config.Config) (*marketref.Provider, error) {
	if cfg.MarketRef.Path != "" {
		return marketref.NewProviderFromFile(cfg.MarketRef.Path)
	}
	return marketref.NewProvider()
}
