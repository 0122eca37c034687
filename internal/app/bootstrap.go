package app

import (
	"fmt"
	"strings"

	"teamup/internal/config"
	"teamup/internal/delivery/http/handler"
	"teamup/internal/delivery/http/middleware"
	"teamup/internal/delivery/http/routes"
	"teamup/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, container *Container) (*App, func() error, error) {
	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, container)
	registerRoutes(f, container)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.Graph, c.Cache),
		handler.NewUserHandler(c.Users),
		handler.NewMatchHandler(c.Matching),
		handler.NewAvailabilityHandler(c.Availability),
		ws.NewHandler(c.PresenceHub, c.Logger),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
