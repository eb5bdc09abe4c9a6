package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/simple-cms/pkg/simplecms"
	"github.com/tendant/simple-cms/pkg/simplecms/api"
	"github.com/tendant/simple-cms/pkg/simplecms/config"
)

type Config struct {
	Port              string        `env:"PORT" env-default:"8080"`
	Environment       string        `env:"ENVIRONMENT" env-default:"development"`
	DatabaseType      string        `env:"DATABASE_TYPE" env-default:"memory"`
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" env-default:"1m"`
	DB                DbConfig
}

type DbConfig struct {
	Port     uint16 `env:"CMS_PG_PORT" env-default:"5432"`
	Host     string `env:"CMS_PG_HOST" env-default:"localhost"`
	Name     string `env:"CMS_PG_NAME" env-default:"cms_db"`
	User     string `env:"CMS_PG_USER" env-default:"cms"`
	Password string `env:"CMS_PG_PASSWORD" env-default:"pwd"`
	Schema   string `env:"CMS_PG_SCHEMA" env-default:"cms"`
}

func (c DbConfig) toDatabaseUrl() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}
	return u.String()
}

func main() {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	opts := []config.Option{
		config.WithPort(cfg.Port),
		config.WithEnvironment(cfg.Environment),
		config.WithReconcileInterval(cfg.ReconcileInterval),
	}
	if cfg.DatabaseType == "postgres" {
		opts = append(opts,
			config.WithDatabase("postgres", cfg.DB.toDatabaseUrl()),
			config.WithDatabaseSchema(cfg.DB.Schema),
		)
	}

	serverConfig, err := config.Load(opts...)
	if err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	if serverConfig.DatabaseType == "postgres" {
		if err := config.PingPostgres(serverConfig.DatabaseURL, serverConfig.DBSchema); err != nil {
			log.Fatalf("Database check failed: %v", err)
		}
	}

	svc, err := serverConfig.BuildService()
	if err != nil {
		log.Fatalf("Failed to build service: %v", err)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: api.NewRouter(svc),
	}

	// The reconciliation sweep is driven by a ticker here; an external
	// scheduler hitting POST /announcements/reconcile works as well.
	reconcileCtx, stopReconciler := context.WithCancel(context.Background())
	go runReconciler(reconcileCtx, svc, serverConfig.ReconcileInterval)

	go func() {
		log.Printf("Simple CMS server starting on port %s (env: %s, db: %s)",
			serverConfig.Port, serverConfig.Environment, serverConfig.DatabaseType)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	stopReconciler()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func runReconciler(ctx context.Context, svc simplecms.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := svc.ReconcileAnnouncements(ctx); err != nil {
				slog.Error("Announcement reconciliation failed", "error", err)
			}
		}
	}
}
