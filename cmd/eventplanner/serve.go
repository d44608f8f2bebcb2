package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"eventplanner/internal/adapters/discord"
	httpadapter "eventplanner/internal/adapters/http"
	"eventplanner/internal/application"
	"eventplanner/internal/clock"
	"eventplanner/internal/config"
	"eventplanner/internal/infrastructure/database"
	"eventplanner/internal/infrastructure/i18n"
	"eventplanner/internal/infrastructure/rabbitmq"
	"eventplanner/internal/infrastructure/redis"
	"eventplanner/pkg/tz"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Apply migrations and run the HTTP API (plus Discord, RabbitMQ and Redis when configured).",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.LogLevel)
			return serve(c.Context, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	clk := clock.NewSystem(tz.Load(cfg.Timezone))
	translator := i18n.NewTranslator(cfg.Locale)
	policy := application.RolePolicy{}

	eventService := application.NewEventService(database.NewEventRepository(pool), policy, clk, logger)
	userService := application.NewUserService(
		database.NewUserRepository(pool),
		database.NewSessionRepository(pool),
		policy,
		clk,
		cfg.SessionTTL,
	)

	var notifiers application.Notifiers

	if cfg.AMQPURL != "" {
		publisher := rabbitmq.NewPublisher(cfg.AMQPURL)
		if err := publisher.Open(); err != nil {
			return fmt.Errorf("cannot open rabbitmq connection: %w", err)
		}
		defer publisher.Close()
		notifiers = append(notifiers, publisher)
		logger.Info("rabbitmq publisher ready", "exchange", rabbitmq.Exchange)
	}

	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("cannot open redis connection: %w", err)
		}
		defer client.Close()
		eventService.WithDashboardCache(redis.NewDashboardCache(client), cfg.DashboardCacheTTL)
		logger.Info("opened redis connection")
	}

	if cfg.DiscordEnabled() {
		bot, err := discord.NewBot(cfg.DiscordToken, cfg.DiscordGuildID, discord.NewHandler(eventService, translator, clk), logger)
		if err != nil {
			return err
		}
		if err := bot.Open(); err != nil {
			return err
		}
		defer bot.Close()
		notifiers = append(notifiers, discord.NewChannelNotifier(bot.Session(), cfg.DiscordChannelID, translator, cfg.Locale))
	}

	if len(notifiers) > 0 {
		eventService.WithNotifier(notifiers)
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpadapter.NewServer(eventService, userService, translator, logger).Handler(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("api listening", "addr", cfg.HTTPAddr)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
	return nil
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "down", Usage: "Roll back N migrations instead of applying."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			setupLogger(cfg.LogLevel)
			if n := c.Int("down"); n > 0 {
				return database.RollbackMigrations(cfg.DatabaseURL, n)
			}
			return database.RunMigrations(cfg.DatabaseURL)
		},
	}
}
