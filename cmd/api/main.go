// Package main is the entry point for the content-service API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"content-service/internal/app/service"
	"content-service/internal/config"
	"content-service/internal/domain"
	"content-service/internal/infra/httpclient"
	"content-service/internal/infra/mail"
	"content-service/internal/infra/postgres"
	"content-service/internal/infra/postgres/migrations"
	"content-service/internal/job"
	"content-service/internal/logger"
	"content-service/internal/transport/httpserver"
	"content-service/internal/validator"
	"content-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting content-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := postgres.NewConnection(
		postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			Name:         cfg.Database.Name,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		},
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = postgres.Close(db) }()

	// Run migrations
	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database migrations completed")

	// Create repository with the configured counter boost
	repo := postgres.NewRepository(db, domain.BoostRange{
		Min: cfg.Counter.MinBoost,
		Max: cfg.Counter.MaxBoost,
	})

	// Create services
	contentSvc := service.NewContentService(repo, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
			Debug:     cfg.App.Debug,
		},
		contentSvc,
		db,
		v,
		log.Logger,
	)

	// Start the digest job when mail delivery is configured
	var scheduler *job.DigestScheduler
	if cfg.Digest.Enabled && cfg.Mail.Enabled {
		// Connect to Redis for distributed locking
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx := context.Background()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		log.Info("connected to Redis",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)

		mailer := mail.New(
			mail.Config{
				From: cfg.Mail.From,
				To:   cfg.Mail.To,
				HTTP: httpclient.ClientConfig{
					BaseURL: cfg.Mail.BaseURL,
					Timeout: cfg.Mail.Timeout,
					Retry: httpclient.RetryConfig{
						MaxAttempts: cfg.Mail.Retry.MaxAttempts,
						WaitTime:    cfg.Mail.Retry.WaitTime,
						MaxWaitTime: cfg.Mail.Retry.MaxWaitTime,
					},
					CB: httpclient.CBConfig{
						MaxRequests:  cfg.Mail.CB.MaxRequests,
						Interval:     cfg.Mail.CB.Interval,
						Timeout:      cfg.Mail.CB.Timeout,
						FailureRatio: cfg.Mail.CB.FailureRatio,
					},
				},
			},
			log.Logger,
		)

		digestSvc := service.NewDigestService(repo, mailer, cfg.Digest.TopN, log.Logger)
		distLocker := locker.NewRedisLocker(redisClient, log.Logger)

		scheduler = job.NewDigestScheduler(
			digestSvc,
			job.DigestConfig{
				Interval:  cfg.Digest.Interval,
				Timeout:   cfg.Digest.Timeout,
				OnStartup: cfg.Digest.OnStartup,
			},
			log.Logger,
			distLocker,
		)
		scheduler.Start(cfg.Digest.OnStartup)
	} else {
		log.Info("digest job disabled")
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		// Stop scheduler
		if scheduler != nil {
			scheduler.Stop()
		}

		// Shutdown server with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
