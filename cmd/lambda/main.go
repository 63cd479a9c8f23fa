package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"ccms-monitor/internal/adapters/primary/lambdahandler"
	"ccms-monitor/internal/adapters/secondary/postgres"
	"ccms-monitor/internal/adapters/secondary/saprfc"
	"ccms-monitor/internal/adapters/secondary/secretsmanager"
	"ccms-monitor/internal/config"
	"ccms-monitor/internal/core/ports/output"
	"ccms-monitor/internal/core/services"
)

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
	var archive ports.ReadingRepository
	if cfg.Database.Enabled {
		pool, err := newPool(ctx, cfg)
		if err != nil {
			log.Warnf("reading archive init failed (continuing without archive): %v", err)
		} else {
			archive = postgres.NewReadingRepository(pool)
			log.Info("reading archive initialized")
		}
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

	// Primary Adapter (Lambda Handler)
	h := lambdahandler.New(monitorSvc)

	lambda.Start(h.Handle)
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
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
