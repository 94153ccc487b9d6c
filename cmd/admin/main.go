package main

import (
	"context"
	"errors"
	"flag"
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
	"myplanetplan-api/internal/core/config"
	"myplanetplan-api/internal/core/database"
	"myplanetplan-api/internal/core/logger"
	"myplanetplan-api/internal/core/server"
	"myplanetplan-api/internal/repo"
	"myplanetplan-api/internal/service"
	"myplanetplan-api/internal/transport/http/router"
)

func main() {
	migrate := flag.Bool("migrate", false, "create or update tables and exit")
	seed := flag.Bool("seed", false, "insert missing default domains and exit")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))
	store := repo.NewStore(db)

	if *migrate || *seed {
		if *migrate {
			if err := database.Migrate(db); err != nil {
				log.Fatal("migrate failed", zap.Error(err))
			}
			log.Info("migrate done")
		}
		if *seed {
			n, err := database.Seed(context.Background(), store.Domains())
			if err != nil {
				log.Fatal("seed failed", zap.Error(err))
			}
			log.Info("domains seeded", zap.Int("entries", n))
		}
		return
	}

	verifier := mustVerifier(cfg, log)
	svc := service.New(store, service.Options{
		IdempotentCompletion: cfg.Completion.Idempotent,
		Log:                  log,
	})
	r := router.NewAdminEngine(log, cfg.Limits, verifier, router.Modules(svc))

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second, log)

	host4human := cfg.App.Admin.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("admin api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("admin api stopped gracefully")
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
	return v
}
