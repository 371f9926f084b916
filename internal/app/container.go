package app

import (
	"context"
	"log"
	"time"

	"jobscout/internal/config"
	"jobscout/internal/database"
	dbpostgres "jobscout/internal/database/postgres"
	"jobscout/internal/infrastructure/cache"
	"jobscout/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Redis  *cache.Redis
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(logger)
	hub := ws.NewHub(logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redis,
		Hub:    hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
