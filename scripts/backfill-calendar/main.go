// scripts/backfill-calendar/main.go
//
// Mirrors every incomplete, upcoming task that has no Google Calendar event
// yet. Uses the same config.yaml as the API.
//
// Usage:
//   go run ./scripts/backfill-calendar

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gauravmalhotra04/raiden-ai/config"
	sqliteCfg "github.com/gauravmalhotra04/raiden-ai/config/sqlite"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/internal/reminder"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	taskRepo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository/sqlite"
	taskUC "github.com/gauravmalhotra04/raiden-ai/internal/task/usecase"
	"github.com/gauravmalhotra04/raiden-ai/pkg/datemath"
	"github.com/gauravmalhotra04/raiden-ai/pkg/gcalendar"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})

	ctx := context.Background()

	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Fatal(ctx, "google_calendar.credentials_path is not configured")
	}

	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone %q: %v", cfg.Planner.Timezone, err)
	}
	loc := dateMathParser.Location()

	db, err := sqliteCfg.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer sqliteCfg.Disconnect(ctx, db)

	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Google Calendar: %v", err)
	}

	// Reminders are not touched here; the scheduler only satisfies the usecase.
	tasks := taskRepo.New(db, logger, loc)
	scheduler := reminder.New(logger, tasks, notification.NewFanout(), reminder.Config{})
	defer scheduler.Stop()

	uc := taskUC.New(logger, tasks, scheduler, notification.NewFanout(), dateMathParser, taskUC.Config{
		PreDueOffset: cfg.Planner.PreDueOffset,
		Calendar: task.CalendarConfig{
			Client:     calendarClient,
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   loc.String(),
		},
	})

	logger.Info(ctx, "Starting calendar backfill...")
	n, err := uc.BackfillCalendar(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Backfill failed: %v", err)
	}
	logger.Infof(ctx, "Backfill complete: %d task(s) mirrored", n)
}
