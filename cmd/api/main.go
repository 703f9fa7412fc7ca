// @title        DevConnect Profile API
// @version      1.0
// @description  CRUD REST backend for developer profiles: registration, auth, profiles, posts.
//
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        x-auth-token
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/devconnect/profile-api/docs"
	"github.com/devconnect/profile-api/internal/api"
	"github.com/devconnect/profile-api/internal/core/service"
	"github.com/devconnect/profile-api/internal/infrastructure/config"
	mongodb "github.com/devconnect/profile-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devconnect/profile-api/internal/infrastructure/db/redis"
	"github.com/devconnect/profile-api/internal/infrastructure/queue"
	"github.com/devconnect/profile-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Storage connection failure is fatal, not retried.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := api.EnsureIndexes(db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	activityService := service.NewActivityService(mongodb.NewActivityRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, activityService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, activityService, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
