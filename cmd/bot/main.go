package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speakify/internal/ai"
	"speakify/internal/config"
	"speakify/internal/handler"
	"speakify/internal/middleware"
	"speakify/internal/repository/postgres"
	"speakify/internal/service"
	"speakify/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const restartBackoff = 15 * time.Second

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Speakify Bot")

	// Load configuration. A missing bot token is the only fatal
	// misconfiguration; a missing AI credential just disables feedback.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	questionRepo := postgres.NewQuestionRepo(db)
	userRepo := postgres.NewUserRepo(db)

	// Initialize services
	catalogService := service.NewCatalogService(questionRepo, logger)
	activityService := service.NewActivityService(userRepo, logger)
	statsService := service.NewStatsService(userRepo, questionRepo, logger)
	broadcastService := service.NewBroadcastService(userRepo, cfg.AdminIDs, cfg.BroadcastDelay, logger)

	var analyzer service.SpeechAnalyzer
	if cfg.OpenAIKey != "" {
		analyzer = ai.NewClient(cfg.OpenAIKey)
	} else {
		logger.Warn("OPENAI_API_KEY is not set, AI feedback is disabled")
	}
	feedbackService := service.NewFeedbackService(analyzer, cfg.MaxVoiceDuration, logger)

	// Seed fresh catalogs with sample questions
	if err := catalogService.SeedSampleData(); err != nil {
		logger.Error("Failed to seed sample data", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			if c != nil && c.Sender() != nil {
				logger.Error("Handler error", zap.Int64("chat_id", c.Sender().ID), zap.Error(err))
				return
			}
			logger.Error("Handler error", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.Recover(logger))
	bot.Use(middleware.Activity(activityService, logger))

	// Initialize handler
	h := handler.NewHandler(bot, handler.Services{
		Catalog:   catalogService,
		Stats:     statsService,
		Broadcast: broadcastService,
		Feedback:  feedbackService,
	}, session.NewStore(), cfg, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start supervised polling in background
	go supervisePolling(bot, logger)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// supervisePolling keeps the event loop alive: if polling ever crashes
// it is restarted after a fixed backoff instead of exiting.
func supervisePolling(bot *tele.Bot, logger *zap.Logger) {
	for {
		stopped := runPolling(bot, logger)
		if stopped {
			return
		}

		logger.Info("Restarting bot polling", zap.Duration("backoff", restartBackoff))
		time.Sleep(restartBackoff)
	}
}

// runPolling blocks on the poller and reports whether it returned
// cleanly (via Stop) as opposed to crashing.
func runPolling(bot *tele.Bot, logger *zap.Logger) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Bot polling panicked", zap.Any("panic", r))
		}
	}()

	bot.Start()
	return true
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return nil
}
