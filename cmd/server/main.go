// Package main runs the LuminosMC community API.
//
// @title                       LuminosMC Community API
// @version                     1.0
// @description                 Forum, shop catalog and staff administration for the LuminosMC community.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/luminosmc/community-api/docs"
	"github.com/luminosmc/community-api/internal/api"
	"github.com/luminosmc/community-api/internal/api/metrics"
	"github.com/luminosmc/community-api/internal/core/ports"
	"github.com/luminosmc/community-api/internal/core/service"
	"github.com/luminosmc/community-api/internal/infrastructure/config"
	"github.com/luminosmc/community-api/internal/infrastructure/db/mongo"
	"github.com/luminosmc/community-api/internal/infrastructure/db/redis"
	"github.com/luminosmc/community-api/internal/infrastructure/http/handlers"
	"github.com/luminosmc/community-api/internal/infrastructure/realtime"
	"github.com/luminosmc/community-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "community-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "community-api",
	})
	if cfg.InsecureSecret() {
		log.Warn().Msg("JWT_SECRET_KEY is not set, tokens are signed with the insecure default secret")
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	checks := []handlers.Check{handlers.MongoCheck(db)}
	var guard ports.IdempotencyGuard
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)
		guard = redis.NewIdempotencyGuard(rdb)
		checks = append(checks, handlers.RedisCheck(rdb))
	} else {
		log.Info().Msg("REDIS_ADDR not set, idempotency keys are ignored")
	}

	// --- Repositories ---
	members := mongo.NewMemberRepository(db)
	staff := mongo.NewStaffRepository(db)
	posts := mongo.NewPostRepository(db)
	products := mongo.NewProductRepository(db)
	roles := mongo.NewRoleRepository(db)

	seeder := service.NewSeeder(staff, roles, products,
		service.OwnerAccount{Username: cfg.Owner.Username, Password: cfg.Owner.Password},
		logger.For("bootstrap"))
	if err := seeder.Seed(ctx); err != nil {
		return err
	}

	hub := realtime.NewHub(metrics.Realtime{}, logger.For("realtime"))
	perms := service.NewPermissionService(roles)

	e := api.NewRouter(api.Options{
		Services: api.Services{
			Auth:     service.NewAuthService(members, staff, hub, cfg.JWTSecret, cfg.TokenTTL, logger.For("auth")),
			Posts:    service.NewPostService(posts, perms, hub, logger.For("posts")),
			Products: service.NewProductService(products, perms, hub, logger.For("products")),
			Members:  service.NewMemberService(members, perms, hub, logger.For("members")),
			Staff:    service.NewStaffService(staff, perms, hub, logger.For("staff")),
			Roles:    service.NewRoleService(roles, staff, perms, hub, logger.For("roles")),
			Stats:    service.NewStatsService(posts, members, staff, products),
		},
		Realtime:     hub,
		Idempotency:  guard,
		HealthChecks: checks,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       logger.For("http"),
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	hub.CloseAll()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
}
