package routes

import (
	"teamup/internal/delivery/http/handler"
	"teamup/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health       *handler.HealthHandler
	users        *handler.UserHandler
	matches      *handler.MatchHandler
	availability *handler.AvailabilityHandler
	presenceWS   *ws.Handler
}

func NewRegistry(
	health *handler.HealthHandler,
	users *handler.UserHandler,
	matches *handler.MatchHandler,
	availability *handler.AvailabilityHandler,
	presenceWS *ws.Handler,
) *Registry {
	return &Registry{
		health:       health,
		users:        users,
		matches:      matches,
		availability: availability,
		presenceWS:   presenceWS,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Match routes go first so /users/all wins over /users/:username.
	r.matches.RegisterRoutes(v1)
	r.users.RegisterRoutes(v1)
	r.availability.RegisterRoutes(v1)

	if r.presenceWS != nil {
		v1.Get("/presence/ws", r.presenceWS.HandlePresenceWS)
	}
}
