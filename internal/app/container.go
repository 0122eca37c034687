package app

import (
	"context"
	"time"

	"teamup/internal/config"
	dbneo4j "teamup/internal/database/neo4j"
	"teamup/internal/infrastructure/cache"
	"teamup/internal/repository"
	"teamup/internal/usecase"
	"teamup/internal/ws"

	"go.uber.org/zap"
)

// Container wires long-lived clients and services once at startup.
// Both clients are pooled and shared across requests; the hosting
// process owns their lifecycle through Close.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	Graph *dbneo4j.Store
	Cache *cache.Redis

	Users        *usecase.Users
	Matching     *usecase.Matching
	Availability *usecase.Availability

	PresenceHub *ws.Hub
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	graph, err := dbneo4j.Connect(ctx, cfg.Graph)
	if err != nil {
		return nil, err
	}
	if err := graph.EnsureConstraints(ctx); err != nil {
		_ = graph.Close(ctx)
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	graphRepo := repository.NewNeo4jUserRepository(graph)
	matching := usecase.NewMatchingUsecase(graphRepo, redisCache, logger)
	users := usecase.NewUserUsecase(graphRepo, matching, logger)
	availabilityUC := usecase.NewAvailabilityUsecase(graphRepo, redisCache, ws.NewNotifier(hub), logger)

	return &Container{
		Config:       cfg,
		Logger:       logger,
		Graph:        graph,
		Cache:        redisCache,
		Users:        users,
		Matching:     matching,
		Availability: availabilityUC,
		PresenceHub:  hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Graph != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return c.Graph.Close(ctx)
	}
	return nil
}
