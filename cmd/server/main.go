package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/andripeetso/group-calendar-scheduler/internal/config"
	"github.com/andripeetso/group-calendar-scheduler/internal/db"
	"github.com/andripeetso/group-calendar-scheduler/internal/handler"
	"github.com/andripeetso/group-calendar-scheduler/internal/middleware"
	"github.com/andripeetso/group-calendar-scheduler/internal/repository"
	"github.com/andripeetso/group-calendar-scheduler/internal/router"
	"github.com/andripeetso/group-calendar-scheduler/internal/service"
)

func main() {
	envLoaded := godotenv.Load() == nil

	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "group-calendar-scheduler")
	if !envLoaded {
		log.Debug().Msg("no .env file found, using process environment")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := db.CreateSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}
	log.Info().Msg("database schema ready")

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)
	cache.SetCounters(handler.Metrics.CacheHits, handler.Metrics.CacheMisses)

	voterRepo := repository.NewVoterRepo(pool)
	voteRepo := repository.NewVoteRepo(pool)
	configRepo := repository.NewConfigRepo(pool)

	windowSvc := service.NewWindowService(configRepo)
	voteSvc := service.NewVoteService(voteRepo, windowSvc, cache)
	overlapSvc := service.NewOverlapService(voteRepo, cache)
	adminSvc := service.NewAdminService(voterRepo, configRepo, cache)

	if cfg.AdminSecret == "" {
		log.Warn().Msg("no ADMIN_SECRET configured, admin routes disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Group Calendar Scheduler API",
		ServerHeader: "scheduler",
	})

	router.Setup(app, &router.Handlers{
		Vote:    handler.NewVoteHandler(voteSvc),
		Results: handler.NewResultsHandler(overlapSvc),
		Roster:  handler.NewRosterHandler(adminSvc),
		Config:  handler.NewConfigHandler(windowSvc, adminSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins, cfg.AdminSecret)

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("scheduler backend starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server closed")
	}
}
