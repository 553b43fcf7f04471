package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	_ "navigator/docs"
	"navigator/internal/app/analytics"
	"navigator/internal/app/config"
	"navigator/internal/app/handler"
	"navigator/internal/app/middleware"
	"navigator/internal/app/repository"
	"navigator/internal/app/storage"
	"navigator/internal/pkg"
)

// LoadRepository loads the embedded catalog, or the directory from config when set.
func LoadRepository(cfg *config.Config) (*repository.Repository, error) {
	if cfg.Catalog.Path != "" {
		return repository.NewFromDir(cfg.Catalog.Path)
	}
	return repository.New()
}

// NewApplication wires the catalog, handlers and middleware into a ready application.
func NewApplication(ctx context.Context, cfg *config.Config) (*pkg.Application, error) {
	repo, err := LoadRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	tracker := analytics.NewTracker(logrus.StandardLogger(), registry)

	reports := &handler.Reports{Tracker: tracker, Now: time.Now}
	if cfg.MinIO.Endpoint != "" {
		archive, err := storage.NewReportArchive(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("report archive: %w", err)
		}
		reports.Archive = archive
		logrus.Infof("report archive enabled: %s/%s", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logrus.StandardLogger()),
		cors.New(corsConfig(cfg.CORS)),
	)

	return pkg.NewApp(
		cfg,
		router,
		handler.NewHandler(repo, tracker, reports),
		handler.NewAPIHandler(repo, tracker, reports, registry),
	), nil
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, handler.ReportURLHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowOrigins) == 0 || (len(c.AllowOrigins) == 1 && c.AllowOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowOrigins
	}
	return cc
}

// StartServer runs the HTTP server until ctx is cancelled.
func StartServer(ctx context.Context, cfg *config.Config) error {
	logrus.Info("Starting server")

	app, err := NewApplication(ctx, cfg)
	if err != nil {
		return err
	}
	return app.RunApp(ctx)
}
