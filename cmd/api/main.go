package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"workspace-admin/config"
	_ "workspace-admin/docs" // Swagger docs
	"workspace-admin/internal/booking/mirror"
	"workspace-admin/internal/httpserver"
	"workspace-admin/internal/session"
	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/datemath"
	"workspace-admin/pkg/gcalendar"
	"workspace-admin/pkg/log"
	"workspace-admin/pkg/otel"
)

// @title       Workspace Admin API
// @description Admin dashboard and JSON API over the workspace management backend.
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

	logger.Info(ctx, "Starting Workspace Admin...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Tracing (optional)
	telemetry, err := otel.Setup(ctx, otel.Config{
		Endpoint:       cfg.OTel.Endpoint,
		Headers:        cfg.OTel.Headers,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.OTel.ServiceVersion,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize tracing: ", err)
		return
	}
	traceService := ""
	if telemetry != nil {
		traceService = cfg.OTel.ServiceName
		logger.Infof(ctx, "Tracing exported to %s", cfg.OTel.Endpoint)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Warnf(shutdownCtx, "Tracing shutdown: %v", err)
		}
	}()

	// 4. Session store
	sessions, closeStore, err := newSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		return
	}
	defer closeStore()

	// 5. Remote API client; a 401 drops the caller's session
	client := backend.NewClient(cfg.Backend.BaseURL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithRateLimit(cfg.Backend.RateLimit, cfg.Backend.RateBurst),
		backend.WithUserAgent(httpserver.ServiceName+"/"+httpserver.HealthVersion),
		backend.WithUnauthorizedHook(session.ClearOnUnauthorized(sessions, logger)),
	)

	// 6. Dashboard calendar
	calendar, err := datemath.NewCalendar(cfg.Dashboard.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dashboard.Timezone, err)
		calendar, _ = datemath.NewCalendar("UTC")
	}

	// 7. Google Calendar mirror (optional)
	var events mirror.EventWriter
	if cfg.GoogleCalendar.Enabled {
		gcal, gcalErr := gcalendar.NewClientFromCredentialsFile(ctx,
			cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.CalendarID, calendar.Location().String())
		if gcalErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcalErr)
		} else {
			events = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TraceService:    traceService,
		Backend:         client,
		Sessions:        sessions,
		Session:         cfg.Session,
		Login:           cfg.Login,
		Calendar:        calendar,
		Currency:        cfg.Dashboard.Currency,
		PerPage:         cfg.Dashboard.PerPage,
		CalendarEvents:  events,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newSessionStore builds the configured session store and its cleanup.
func newSessionStore(ctx context.Context, cfg *config.Config, logger log.Logger) (session.Store, func(), error) {
	if cfg.Session.Store != "redis" {
		logger.Infof(ctx, "Sessions kept in memory (max %d)", cfg.Session.MaxEntries)
		return session.NewMemoryStore(cfg.Session.MaxEntries, cfg.Session.TTL), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Infof(ctx, "Sessions kept in redis at %s", opts.Addr)

	return session.NewRedisStore(rdb, cfg.Redis.KeyPrefix, cfg.Session.TTL), func() {
		if err := rdb.Close(); err != nil {
			logger.Warnf(ctx, "redis close: %v", err)
		}
	}, nil
}
