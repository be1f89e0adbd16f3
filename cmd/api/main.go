package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/config"
	redisCfg "github.com/gauravmalhotra04/raiden-ai/config/redis"
	sqliteCfg "github.com/gauravmalhotra04/raiden-ai/config/sqlite"
	_ "github.com/gauravmalhotra04/raiden-ai/docs" // Swagger docs
	attendanceRepo "github.com/gauravmalhotra04/raiden-ai/internal/attendance/repository/sqlite"
	attendanceUC "github.com/gauravmalhotra04/raiden-ai/internal/attendance/usecase"
	"github.com/gauravmalhotra04/raiden-ai/internal/digest"
	flashcardRepo "github.com/gauravmalhotra04/raiden-ai/internal/flashcard/repository/sqlite"
	flashcardUC "github.com/gauravmalhotra04/raiden-ai/internal/flashcard/usecase"
	"github.com/gauravmalhotra04/raiden-ai/internal/httpserver"
	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	redisSink "github.com/gauravmalhotra04/raiden-ai/internal/notification/redis"
	tgSink "github.com/gauravmalhotra04/raiden-ai/internal/notification/telegram"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification/websocket"
	"github.com/gauravmalhotra04/raiden-ai/internal/reminder"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	taskRepo "github.com/gauravmalhotra04/raiden-ai/internal/task/repository/sqlite"
	taskUC "github.com/gauravmalhotra04/raiden-ai/internal/task/usecase"
	"github.com/gauravmalhotra04/raiden-ai/pkg/datemath"
	"github.com/gauravmalhotra04/raiden-ai/pkg/gcalendar"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
	"github.com/gauravmalhotra04/raiden-ai/pkg/telegram"
)

// @title       Raiden Study Planner API
// @description Study planner with deadline reminders, flashcards and attendance tracking.
// @version     1
// @host        localhost:5000
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

	logger.Info(ctx, "Starting Raiden study planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser (planner timezone)
	dateMathParser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	loc := dateMathParser.Location()
	logger.Infof(ctx, "Planner timezone: %s, pre-due offset: %s", loc, cfg.Planner.PreDueOffset)

	// 4. Storage
	db, err := sqliteCfg.Connect(ctx, cfg.SQLite)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer sqliteCfg.Disconnect(context.Background(), db)

	tasks := taskRepo.New(db, logger, loc)
	flashcards := flashcardRepo.New(db, logger, loc)
	attendanceRecords := attendanceRepo.New(db, logger, loc)

	// 5. Push channels
	var taskUseCase task.UseCase
	hub := websocket.New(logger, websocket.Config{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Snapshot: func(ctx context.Context) ([]model.Task, error) {
			return taskUseCase.Snapshot(ctx)
		},
	})
	defer hub.Close()

	sinks := notification.NewFanout().Add("websocket", hub)

	if cfg.Redis.Addr != "" {
		redisClient, rErr := redisCfg.Connect(ctx, cfg.Redis)
		if rErr != nil {
			logger.Warnf(ctx, "Redis not available (optional): %v", rErr)
		} else {
			defer redisCfg.Disconnect()
			sinks.Add("redis", redisSink.New(logger, redisClient, cfg.Redis.Channel))
			logger.Infof(ctx, "✅ Redis fan-out on channel %s", cfg.Redis.Channel)
		}
	}

	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		me, tErr := bot.GetMe(ctx)
		if tErr != nil {
			logger.Warnf(ctx, "Telegram not available (optional): %v", tErr)
		} else {
			sinks.Add("telegram", tgSink.New(logger, bot, cfg.Telegram.ChatID, cfg.Planner.PreDueOffset))
			logger.Infof(ctx, "✅ Telegram reminders via @%s", me.Username)
		}
	}
	logger.Infof(ctx, "Notification sinks: %d", sinks.Len())

	// 6. Reminder scheduler
	scheduler := reminder.New(logger, tasks, sinks, reminder.Config{
		PreDueOffset: cfg.Planner.PreDueOffset,
	})

	// 7. Google Calendar mirror (optional)
	calendarCfg := task.CalendarConfig{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Timezone:   loc.String(),
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			calendarCfg.Client = calendarClient
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 8. UseCases
	taskUseCase = taskUC.New(logger, tasks, scheduler, sinks, dateMathParser, taskUC.Config{
		PreDueOffset: cfg.Planner.PreDueOffset,
		Calendar:     calendarCfg,
	})
	flashcardUseCase := flashcardUC.New(logger, flashcards)
	attendanceUseCase := attendanceUC.New(logger, attendanceRecords, sinks, dateMathParser, nil)

	restored, err := taskUseCase.RestoreReminders(ctx)
	if err != nil {
		logger.Warnf(ctx, "Failed to restore reminders: %v", err)
	} else {
		logger.Infof(ctx, "Restored reminders for %d task(s)", restored)
	}

	// 9. Daily digest (optional)
	var dailyDigest *digest.Digest
	if cfg.Digest.Enabled {
		dailyDigest, err = digest.New(logger, taskUseCase, sinks, digest.Config{
			Spec:     cfg.Digest.Cron,
			Location: loc,
		})
		if err != nil {
			logger.Error(ctx, "Failed to schedule daily digest: ", err)
			return
		}
		dailyDigest.Start()
		logger.Infof(ctx, "✅ Daily digest scheduled (%s)", cfg.Digest.Cron)
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		AppConfig:    cfg,
		DB:           db,
		Hub:          hub,
		TaskUC:       taskUseCase,
		FlashcardUC:  flashcardUseCase,
		AttendanceUC: attendanceUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	// 12. Shutdown background work before the deferred closers run
	scheduler.Stop()
	if dailyDigest != nil {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := dailyDigest.Stop(stopCtx); err != nil {
			logger.Warnf(stopCtx, "Daily digest did not stop in time: %v", err)
		}
		cancel()
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
