package handler

import (
	"context"

	"teamup/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus the reachability of the two
// backing stores. The cache being down is reported but does not fail
// the check; the graph store being down does.
type HealthHandler struct {
	graph pinger
	cache pinger
}

func NewHealthHandler(graph, cache pinger) *HealthHandler {
	return &HealthHandler{graph: graph, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	checks := map[string]string{
		"graph": "ok",
		"cache": "ok",
	}

	if h.graph != nil {
		if err := h.graph.Ping(c.Context()); err != nil {
			checks["graph"] = "unreachable"
			return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, checks)
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			checks["cache"] = "degraded"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
