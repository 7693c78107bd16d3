package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"homework-planner/internal/reminder"
	"homework-planner/pkg/canvas"
	"homework-planner/pkg/gcalendar"
	"homework-planner/pkg/log"
	"homework-planner/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	db       *sql.DB
	tokens   *scope.Manager
	sessions *reminder.Manager
	loc      *time.Location

	// Remote services
	canvas   *canvas.Client
	calendar *gcalendar.Client // nil when not configured
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	Tokens   *scope.Manager
	Sessions *reminder.Manager
	Location *time.Location

	Canvas   *canvas.Client
	Calendar *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		tokens:      cfg.Tokens,
		sessions:    cfg.Sessions,
		loc:         cfg.Location,
		canvas:      cfg.Canvas,
		calendar:    cfg.Calendar,
	}

	if srv.loc == nil {
		srv.loc = time.Local
	}

	if err := srv.validate(); err != nil {
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.tokens == nil {
		return errors.New("token manager is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.canvas == nil {
		return errors.New("canvas client is required")
	}
	return nil
}
