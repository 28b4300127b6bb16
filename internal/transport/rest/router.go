package rest

import (
	"log/slog"
	"net/http"

	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/internal/transport/middleware"
)

// NewRouter builds the ops listener mux: probes and metrics behind the
// request-id, recovery, logging, and instrumentation middleware.
func NewRouter(log *slog.Logger, db dbPinger, version string) http.Handler {
	health := NewHealthHandler(db, version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", obs.Handler())

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.Logger(log),
		obs.Instrument,
	)
	return chain(mux)
}
