package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/config"
	"github.com/gauravmalhotra04/raiden-ai/internal/attendance"
	"github.com/gauravmalhotra04/raiden-ai/internal/flashcard"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification/websocket"
	"github.com/gauravmalhotra04/raiden-ai/internal/task"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	appConfig   *config.Config

	// Infra
	db  *sql.DB
	hub *websocket.Hub

	// Domains
	taskUC       task.UseCase
	flashcardUC  flashcard.UseCase
	attendanceUC attendance.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Infra
	DB  *sql.DB
	Hub *websocket.Hub

	// Domains
	TaskUC       task.UseCase
	FlashcardUC  flashcard.UseCase
	AttendanceUC attendance.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		appConfig:    cfg.AppConfig,
		db:           cfg.DB,
		hub:          cfg.Hub,
		taskUC:       cfg.TaskUC,
		flashcardUC:  cfg.FlashcardUC,
		attendanceUC: cfg.AttendanceUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appConfig == nil {
		return errors.New("app config is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	return nil
}
