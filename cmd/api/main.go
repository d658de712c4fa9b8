package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/medrecords/patient-system/internal/api"
	"github.com/medrecords/patient-system/internal/auth"
	"github.com/medrecords/patient-system/internal/core/service"
	"github.com/medrecords/patient-system/internal/infrastructure/db/memory"
	redisdb "github.com/medrecords/patient-system/internal/infrastructure/db/redis"
	"github.com/medrecords/patient-system/internal/pkg/config"
	"github.com/medrecords/patient-system/internal/pkg/seed"
	"github.com/medrecords/patient-system/pkg/logger"
)

// @title        Patient Record Management API
// @version      1.0
// @description  Login-gated patient record CRUD. Admins write, users read.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional login limiter backing store. The service runs without
	// throttling when Redis is not configured or unreachable.
	var limiter service.AttemptLimiter
	rdb, err := connectRedis(ctx, cfg)
	if err != nil {
		logg.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
	} else if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb)
		defer rdb.Close()
	}

	users := memory.NewUserStore(cfg.BcryptCost)
	patients := memory.NewPatientStore()

	if cfg.Seed.DemoData {
		if err := seed.Demo(ctx, users, patients, cfg.Seed.AdminPassword, cfg.Seed.UserPassword); err != nil {
			logg.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logg.Info().Msg("demo fixtures seeded")
	}

	e := api.NewRouter(api.Deps{
		Users:    users,
		Patients: patients,
		Tokens:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Limiter:  limiter,
		Redis:    rdb,
		Log:      logg,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped")
		}
	}()
	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	waitForShutdown(logg)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	return redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
}

func waitForShutdown(logg zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logg.Info().Str("signal", sig.String()).Msg("shutting down")
}
