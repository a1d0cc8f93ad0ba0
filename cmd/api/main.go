package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"profiledesk/internal/activity"
	"profiledesk/internal/app"
	"profiledesk/internal/cache"
	"profiledesk/internal/config"
	"profiledesk/internal/events"
	"profiledesk/internal/handlers"
	"profiledesk/internal/jobs"
	"profiledesk/internal/log"
	"profiledesk/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	loc, err := cfg.App.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid timezone")
	}

	recorderOpts := []activity.Option{activity.WithLocation(loc)}

	var (
		redisClient *redis.Client
		feed        *activity.Feed
	)
	if cfg.Events.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		feed = activity.NewFeed(events.NewRedisPublisher(redisClient, cfg.Events.Stream), cfg.Events.Buffer, logger)
		recorderOpts = append(recorderOpts, activity.WithPublisher(feed))
		logger.Info().Str("stream", cfg.Events.Stream).Msg("activity stream enabled")
	}

	recorder := activity.NewRecorder(logger, recorderOpts...)
	dashboard, err := app.NewDefault(recorder, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build application")
	}

	handlerSet, err := handlers.NewHandlerSet(logger, dashboard, redisClient, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build handlers")
	}
	httpServer, err := server.NewHTTPServer(cfg, logger, handlerSet)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build http server")
	}

	scheduler := jobs.NewScheduler(logger)
	scheduler.After(cfg.App.InitDelay, "seed-activity", dashboard.Initialize)
	scheduler.Start()

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, feed, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, feed *activity.Feed, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Warn().Msg("scheduler did not stop in time")
		}
	}

	if feed != nil {
		if err := feed.Close(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("activity feed not drained")
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
