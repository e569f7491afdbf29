package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"varniya_crm_backend/internal/browsers"
	"varniya_crm_backend/internal/dashboard"
	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/followups"
	apphttp "varniya_crm_backend/internal/http"
	"varniya_crm_backend/internal/http/router"
	"varniya_crm_backend/internal/leads"
	"varniya_crm_backend/internal/notification"
	"varniya_crm_backend/internal/orders"
	"varniya_crm_backend/internal/users"
	"varniya_crm_backend/internal/wati"
	"varniya_crm_backend/internal/webhook"
	"varniya_crm_backend/platform/config"
	"varniya_crm_backend/platform/db"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Outbound WATI messaging client; nil when not configured
	watiClient := wati.NewClient(cfg, log)
	if watiClient == nil {
		log.Warn("WATI_API_URL not configured; outbound WhatsApp messages disabled")
	}

	// ========================================================================
	// Domain Modules
	// ========================================================================

	leadsModule := leads.NewModule(pool, eventBus, val, log)
	browsersModule := browsers.NewModule(pool, eventBus, val, log)
	ordersModule := orders.NewModule(pool, eventBus, val, log)
	followUpsModule := followups.NewModule(pool, eventBus, val, log)
	dashboardModule := dashboard.NewModule(pool, val, log)
	usersModule := users.NewModule(pool, val, log)
	webhookModule := webhook.NewModule(pool, browsersModule.Service(), eventBus, val, cfg, log)

	// Event-driven side effects (WATI acknowledgments, high-score flagging)
	notification.NewModule(eventBus, watiClient, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			leadsModule,
			browsersModule,
			ordersModule,
			followUpsModule,
			dashboardModule,
			usersModule,
			webhookModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
