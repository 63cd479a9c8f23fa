package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ccms-monitor/internal/adapters/primary/http/handlers"
	"ccms-monitor/internal/adapters/primary/http/middleware"
	"ccms-monitor/internal/adapters/secondary/postgres"
	"ccms-monitor/internal/adapters/secondary/saprfc"
	"ccms-monitor/internal/adapters/secondary/secretsmanager"
	"ccms-monitor/internal/config"
	"ccms-monitor/internal/core/ports/output"
	"ccms-monitor/internal/core/services"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Local development server exposing the monitor over HTTP with the same
// wiring as the Lambda entrypoint.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}

	// Secondary Adapters (Output Ports)
	credStore := secretsmanager.NewCredentialStore(awsCfg, cfg.Secret.Name, cfg.SAP.TraceLevel)
	connector := saprfc.NewConnector()

	// Reading archive (Optional - based on config)
	var pool *pgxpool.Pool
	var archive ports.ReadingRepository
	if cfg.Database.Enabled {
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			log.Fatalf("parse db config: %v", err)
		}
		poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping db: %v", err)
		}
		log.Info("database connection established")
		archive = postgres.NewReadingRepository(pool)
	} else {
		log.Info("reading archive disabled")
	}

	// Core Services (Application Layer)
	readingSvc := services.NewReadingService(archive)
	monitorSvc := services.NewMonitorService(services.MonitorConfig{
		SID:       cfg.SAP.SID,
		Company:   cfg.SAP.XMICompany,
		Product:   cfg.SAP.XMIProduct,
		Interface: cfg.SAP.XMIInterface,
		Version:   cfg.SAP.XMIVersion,
		ExtUser:   cfg.SAP.XMIExtUser,
	}, credStore, connector, readingSvc)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(monitorSvc, readingSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/ccms")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
