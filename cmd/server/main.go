// Package main is the entry point for the GesCar dealership API. It
// loads configuration, establishes the MongoDB and Redis connections,
// starts the status event dispatcher, and serves HTTP until a shutdown
// signal arrives.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gescar/dealership-system/internal/api"
	"github.com/gescar/dealership-system/internal/core/service"
	"github.com/gescar/dealership-system/internal/infrastructure/config"
	mongodb "github.com/gescar/dealership-system/internal/infrastructure/db/mongo"
	redisdb "github.com/gescar/dealership-system/internal/infrastructure/db/redis"
	"github.com/gescar/dealership-system/internal/infrastructure/queue"
	"github.com/gescar/dealership-system/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting gescar api")

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Status event pipeline ---
	vehicleRepo := mongodb.NewVehicleRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	eventService := service.NewStatusEventService(vehicleRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.Workers, eventService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg.JWTSecret, log)

	// Drain connections cleanly on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced shutdown")
		}
		cancel()
	}()

	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
	log.Info().Msg("server stopped")
}
