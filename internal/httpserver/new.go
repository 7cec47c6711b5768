package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"workspace-admin/config"
	"workspace-admin/internal/booking/mirror"
	"workspace-admin/internal/session"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	traceService    string

	// Remote API and auth store
	backend  *backend.Client
	sessions session.Store
	cookie   config.SessionConfig
	login    config.LoginConfig

	// Presentation
	calendar *datemath.Calendar
	currency string
	perPage  int

	// Optional booking mirror target
	events mirror.EventWriter
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// TraceService enables otelgin spans under this service name when set.
	TraceService string

	Backend  *backend.Client
	Sessions session.Store
	Session  config.SessionConfig
	Login    config.LoginConfig

	Calendar *datemath.Calendar
	Currency string
	PerPage  int

	// CalendarEvents receives confirmed bookings. Nil disables the mirror.
	CalendarEvents mirror.EventWriter
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdown := cfg.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdown,
		traceService:    cfg.TraceService,
		backend:         cfg.Backend,
		sessions:        cfg.Sessions,
		cookie:          cfg.Session,
		login:           cfg.Login,
		calendar:        cfg.Calendar,
		currency:        cfg.Currency,
		perPage:         cfg.PerPage,
		events:          cfg.CalendarEvents,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the router. Used by tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.backend == nil {
		return errors.New("backend client is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar is required")
	}
	return nil
}
