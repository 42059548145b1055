package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursepilot/config"
	_ "coursepilot/docs" // Swagger docs
	"coursepilot/internal/classifier"
	"coursepilot/internal/extraction/repository"
	gcalRepo "coursepilot/internal/extraction/repository/gcal"
	"coursepilot/internal/extraction/usecase"
	"coursepilot/internal/httpserver"
	"coursepilot/pkg/datemath"
	"coursepilot/pkg/gcalendar"
	"coursepilot/pkg/llmprovider"
	"coursepilot/pkg/log"
)

// @title       CoursePilot Extraction API
// @description Turns freeform syllabi, announcements, and LMS text into structured academic tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CoursePilot Extraction Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parser (anchors every date the pipeline resolves)
	timezone := cfg.Extraction.Timezone
	dateMath, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMath, _ = datemath.NewParser("UTC")
	}

	// 4. LLM provider chain (optional: extraction degrades to heuristics)
	providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
	if provErr != nil {
		logger.Warnf(ctx, "No LLM providers available, running heuristics only: %v", provErr)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	if manager.HasProviders() {
		logger.Infof(ctx, "LLM providers configured: %d", len(providers))
	}

	// 5. Google Calendar feed (optional)
	var feedRepo repository.FeedRepository
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			feedRepo = gcalRepo.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar feed initialized")
		}
	}

	// 6. Extraction UseCase
	extractionUC := usecase.New(
		logger,
		manager,
		classifier.New(dateMath),
		dateMath,
		feedRepo,
		usecase.Config{
			Timezone:          timezone,
			MaxChunkSize:      cfg.Extraction.MaxChunkSize,
			FallbackDueDays:   cfg.Extraction.FallbackDueDays,
			RecurrenceHorizon: cfg.Extraction.RecurrenceHorizon,
			ModelTimeout:      parseDuration(cfg.Extraction.ModelTimeout, 30*time.Second),
		},
	)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ExtractionUC: extractionUC,
		RateLimit:    cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
