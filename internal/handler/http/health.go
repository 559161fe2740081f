package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http/response"
)

// Pinger is satisfied by the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db Pinger
}

func NewHealthHandler(db Pinger) HealthHandler {
	return &healthHandlerImpl{db: db}
}

func (h *healthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("Health check failed", "error", err)
		response.ServiceUnavailable(w, "Database unavailable")
		return
	}

	response.Success(w, map[string]string{"status": "ok"})
}
