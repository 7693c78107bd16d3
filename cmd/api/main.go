package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework-planner/config"
	_ "homework-planner/docs" // Swagger docs
	"homework-planner/internal/httpserver"
	"homework-planner/internal/reminder"
	"homework-planner/internal/storage/sqlite"
	taskRepo "homework-planner/internal/task/repository/sqlite"
	"homework-planner/pkg/canvas"
	"homework-planner/pkg/gcalendar"
	"homework-planner/pkg/log"
	"homework-planner/pkg/scope"
)

// @title       Homework Planner API
// @description Homework tracking with due-date reminders, Canvas planner import, and Google Calendar mirroring.
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

	logger.Info(ctx, "Starting Homework Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := sqlite.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to apply migrations: ", err)
		return
	}

	// 4. Reminder timezone
	loc := time.Local
	if cfg.Reminder.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Reminder.Timezone)
		if err != nil {
			logger.Warnf(ctx, "Invalid timezone %q, falling back to local: %v", cfg.Reminder.Timezone, err)
			loc = time.Local
		}
	}

	// 5. Shared infrastructure
	tokens := scope.NewManager(cfg.Auth.JWTSecret, httpserver.ServiceName, cfg.Auth.TokenTTL)
	sessions := reminder.NewManager(taskRepo.New(db, logger), loc, cfg.Reminder.TickInterval, logger)
	defer sessions.StopAll()

	canvasClient := canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.AccessToken)

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Tokens:      tokens,
		Sessions:    sessions,
		Location:    loc,
		Canvas:      canvasClient,
		Calendar:    calendarClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
