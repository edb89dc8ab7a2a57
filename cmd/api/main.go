package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgdesk/admin-api/internal/api"
	"github.com/orgdesk/admin-api/internal/core/service"
	mongodb "github.com/orgdesk/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/orgdesk/admin-api/internal/infrastructure/db/redis"
	"github.com/orgdesk/admin-api/internal/infrastructure/mail"
	"github.com/orgdesk/admin-api/internal/infrastructure/queue"
	"github.com/orgdesk/admin-api/internal/pkg/config"
	"github.com/orgdesk/admin-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// a missing signing key is a configuration error, not a runtime one
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// seed the initial super admin so a fresh deployment can authenticate
	if err := service.EnsureSuperAdmin(ctx,
		mongodb.NewUserRepository(db),
		mongodb.NewDepartmentRepository(db),
		service.BootstrapInput{
			FullName:   cfg.Bootstrap.FullName,
			Email:      cfg.Bootstrap.Email,
			Phone:      cfg.Bootstrap.Phone,
			Password:   cfg.Bootstrap.Password,
			Department: cfg.Bootstrap.Department,
		}, log); err != nil {
		log.Fatal().Err(err).Msg("super admin bootstrap failed")
	}

	mailer := mail.NewSMTPMailer(mail.Config{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		From: cfg.SMTP.From,
	})

	notifier := queue.NewDispatcher(0, mailer, log)
	notifier.Start(ctx)

	e := api.NewRouter(db, rdb, mailer, notifier, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("org-admin API listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
