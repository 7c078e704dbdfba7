package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	store  Pinger
	logger *zap.Logger
}

func NewHealthController(store Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{store: store, logger: logger}
}

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := c.store.Ping(ctx); err != nil {
		c.logger.Warn("Store ping failed", zap.Error(err))
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}

	render.JSON(w, r, map[string]string{"status": "ok"})
}
