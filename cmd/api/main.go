package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"myplanetplan-api/internal/core/auth"
	"myplanetplan-api/internal/core/cache"
	"myplanetplan-api/internal/core/config"
	"myplanetplan-api/internal/core/database"
	"myplanetplan-api/internal/core/logger"
	"myplanetplan-api/internal/core/server"
	"myplanetplan-api/internal/repo"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log)
	defer cleanup()
	undo := logger.RedirectStdLog(log)
	defer undo()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	store := repo.NewStore(db)
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}
	if cfg.DB.Seed {
		n, err := database.Seed(context.Background(), store.Domains())
		if err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("domains seeded", zap.Int("entries", n))
	}

	verifier := mustVerifier(cfg, log)

	opts := service.Options{
		IdempotentCompletion: cfg.Completion.Idempotent,
		Log:                  log,
	}
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.App.Name+":")
		defer c.Close()
		if err := c.Ping(context.Background()); err != nil {
			log.Warn("redis unavailable, lookups fall through to the database", zap.Error(err))
		}
		opts.Cache = c
		opts.CacheTTL = time.Duration(cfg.Redis.TTLSec) * time.Second
	}
	svc := service.New(store, opts)

	r := router.NewAPIEngine(log, cfg.Limits, verifier, router.Modules(svc))

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
		log,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("user api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
		zap.Bool("idempotent_completion", cfg.Completion.Idempotent),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("user api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("user api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

func mustVerifier(cfg *config.Config, l *zap.Logger) *auth.Verifier {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	v, err := auth.NewFromOptions(ctx, auth.Options{
		ServerURL:      cfg.Auth.ServerURL,
		Realm:          cfg.Auth.Realm,
		RealmPublicKey: cfg.Auth.RealmPublicKey,
		Leeway:         time.Duration(cfg.Auth.LeewaySec) * time.Second,
	})
	if err != nil {
		l.Fatal("token verifier", zap.Error(err))
	}
	l.Info("token verifier ready", zap.String("issuer", v.Issuer()))
	return v
}
