package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/noticeboard/api/swagger"
	"github.com/noah-isme/noticeboard/internal/handler"
	"github.com/noah-isme/noticeboard/internal/middleware"
	"github.com/noah-isme/noticeboard/internal/repository"
	"github.com/noah-isme/noticeboard/internal/router"
	"github.com/noah-isme/noticeboard/internal/service"
	"github.com/noah-isme/noticeboard/pkg/config"
	"github.com/noah-isme/noticeboard/pkg/database"
	"github.com/noah-isme/noticeboard/pkg/export"
	"github.com/noah-isme/noticeboard/pkg/flash"
	"github.com/noah-isme/noticeboard/pkg/logger"
	reqidmiddleware "github.com/noah-isme/noticeboard/pkg/middleware/requestid"
	"github.com/noah-isme/noticeboard/pkg/redisconn"
	"github.com/noah-isme/noticeboard/pkg/response"
)

// @title Departmental Notice Board
// @version 1.0.0
// @description Public notice board with a staff-only administration area.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
		if cfg.Session.Secret == "dev_session_secret" {
			logr.Fatal("SESSION_SECRET must be set in production")
		}
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	rdb, err := redisconn.New(cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	location := cfg.Location()
	validate := service.NewValidator()
	metrics := service.NewMetricsService()

	departmentRepo := repository.NewDepartmentRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	eventRepo := repository.NewEventRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	resultRepo := repository.NewResultRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(rdb)

	authSvc := service.NewAuthService(userRepo, sessionRepo, validate, logr, service.AuthConfig{
		SessionSecret: cfg.Session.Secret,
		SessionTTL:    cfg.Session.TTL,
	})
	boardSvc := service.NewBoardService(departmentRepo, announcementRepo, eventRepo, timetableRepo, resultRepo, location, logr)
	exportSvc := service.NewExportService(boardSvc, export.NewCSVExporter(), export.NewPDFExporter(), logr)
	dashboardSvc := service.NewDashboardService(announcementRepo, eventRepo, timetableRepo, resultRepo, departmentRepo, logr)
	services := router.Services{
		Announcements: service.NewAnnouncementService(announcementRepo, departmentRepo, validate, metrics, location, logr),
		Events:        service.NewEventService(eventRepo, departmentRepo, validate, metrics, location, logr),
		Timetables:    service.NewTimetableService(timetableRepo, departmentRepo, validate, metrics, logr),
		Results:       service.NewResultService(resultRepo, departmentRepo, validate, metrics, logr),
		Departments:   service.NewDepartmentService(departmentRepo, validate, metrics, logr),
	}

	notices := flash.NewStore(cfg.Flash.CookieName, cfg.Session.CookieSecure)
	renderer := response.NewJSONRenderer(notices)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.Session(authSvc, cfg.Session.CookieName))

	router.Setup(r, router.Handlers{
		Public: handler.NewPublicHandler(boardSvc, renderer),
		Export: handler.NewExportHandler(exportSvc),
		Auth: handler.NewAuthHandler(authSvc, renderer, notices, handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		}),
		Dashboard: handler.NewDashboardHandler(dashboardSvc, renderer, notices),
		Metrics:   handler.NewMetricsHandler(metrics.Handler()),
		Resources: router.AdminResources(services, renderer, notices),
	}, router.Options{
		Docs:  cfg.Docs.Enabled && cfg.Env != config.EnvProduction,
		Audit: middleware.Audit(logr),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "timezone", location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logr.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
