// Package app wires configuration, storage, messaging, services, and the ops
// HTTP listener together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	amqpadapter "github.com/firmdesk/firmdesk-backend/internal/adapter/amqp"
	"github.com/firmdesk/firmdesk-backend/internal/adapter/postgres"
	auditrepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/audit"
	clientrepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/client"
	employeerepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/employee"
	"github.com/firmdesk/firmdesk-backend/internal/config"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/internal/service/assignment"
	"github.com/firmdesk/firmdesk-backend/internal/service/directory"
	"github.com/firmdesk/firmdesk-backend/internal/service/document"
	"github.com/firmdesk/firmdesk-backend/internal/service/note"
	"github.com/firmdesk/firmdesk-backend/internal/transport/rest"
)

// Services bundles the core service layer. The caller-facing transport (a
// separate deployment concern) mounts its routes on top of this bundle.
type Services struct {
	Document   *document.Service
	Note       *note.Service
	Assignment *assignment.Service
	Directory  *directory.Service
}

// notifier abstracts the outbound event publisher so a missing broker URL can
// fall back to the logging no-op implementation.
type notifier interface {
	Notify(ctx context.Context, event domain.NotificationEvent) error
}

// NewServices wires the service layer onto shared storage and messaging.
func NewServices(
	log *slog.Logger,
	pool *pgxpool.Pool,
	events notifier,
	limits config.PortalConfig,
) *Services {
	clients := clientrepo.New(pool)
	employees := employeerepo.New(pool)
	audit := auditrepo.New(pool)

	return &Services{
		Document:   document.NewService(log, clients, audit, limits),
		Note:       note.NewService(log, clients, audit, limits),
		Assignment: assignment.NewService(log, clients, employees, audit, events, limits),
		Directory:  directory.NewService(log, clients, employees, audit),
	}
}

// App owns the wired backend: the service bundle and the ops HTTP listener.
type App struct {
	Services *Services

	log    *slog.Logger
	server *http.Server
}

// Run is the application entry point: load config, connect, wire everything,
// serve the ops listener until SIGINT/SIGTERM, then drain.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	obs.Init()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	var events notifier
	if cfg.AMQP.URL != "" {
		n, err := amqpadapter.NewNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, logger)
		if err != nil {
			return fmt.Errorf("connect to amqp: %w", err)
		}
		defer n.Close()
		events = n
	} else {
		logger.Warn("no AMQP URL configured, notifications will be dropped")
		events = amqpadapter.NewNopNotifier(logger)
	}

	application := &App{
		Services: NewServices(logger, pool, events, cfg.Portal),
		log:      logger,
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      rest.NewRouter(logger, pool, BuildVersion()),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}

	return application.serve(ctx, cfg.Server.ShutdownTimeout)
}

// serve runs the ops listener until the context is cancelled, then shuts the
// server down within the given timeout.
func (a *App) serve(ctx context.Context, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("ops listener started", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ops listener: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown ops listener: %w", err)
	}

	a.log.Info("stopped")
	return nil
}
