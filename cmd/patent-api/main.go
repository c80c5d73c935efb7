package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/patent-lifecycle-api/api/swagger"
	"github.com/noah-isme/patent-lifecycle-api/internal/handler"
	"github.com/noah-isme/patent-lifecycle-api/internal/middleware"
	"github.com/noah-isme/patent-lifecycle-api/internal/models"
	"github.com/noah-isme/patent-lifecycle-api/internal/repository"
	"github.com/noah-isme/patent-lifecycle-api/internal/service"
	"github.com/noah-isme/patent-lifecycle-api/pkg/cache"
	"github.com/noah-isme/patent-lifecycle-api/pkg/config"
	"github.com/noah-isme/patent-lifecycle-api/pkg/database"
	"github.com/noah-isme/patent-lifecycle-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/patent-lifecycle-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/patent-lifecycle-api/pkg/middleware/requestid"
	"github.com/noah-isme/patent-lifecycle-api/pkg/storage"
)

// @title Patent Lifecycle API
// @version 1.0.0
// @description Patent register, review workflow, and reporting service
// @BasePath /api/v1
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
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The stats cache is an optimization; the API serves live queries
		// without it.
		logr.Warn("redis unavailable, stats cache disabled", zap.Error(err))
		redisClient = nil
	}

	validate := validator.New()

	patentRepo := repository.NewPatentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	inventorRepo := repository.NewInventorRepository(db)
	reviewerRepo := repository.NewReviewerRepository(db)
	oppositionRepo := repository.NewOppositionRepository(db)
	reportRepo := repository.NewReportRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(inventorRepo, reviewerRepo, validate, logr, service.AuthConfig{
		Secret:            cfg.JWT.Secret,
		Expiry:            cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
		AdminEmail:        cfg.Admin.Email,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	})
	patentSvc := service.NewPatentService(patentRepo, validate, logr)
	reviewSvc := service.NewReviewService(assignmentRepo, reviewerRepo, patentRepo, logr)
	reportSvc := service.NewReportService(reportRepo, patentRepo, cacheRepo, cfg.Stats.CacheTTL, logr)
	registrationSvc := service.NewRegistrationService(inventorRepo, reviewerRepo, oppositionRepo, validate, logr)

	var exportSvc *service.ExportJobService
	if cfg.Exports.Enabled {
		store, err := storage.NewExportStore(cfg.Exports.Dir)
		if err != nil {
			logr.Fatal("failed to prepare exports directory", zap.Error(err))
		}
		signer := storage.NewDownloadSigner(cfg.JWT.Secret, cfg.Exports.DownloadTTL)
		exportSvc = service.NewExportJobService(patentRepo, store, signer, cfg.Exports.Workers, cfg.Exports.DownloadTTL, logr)
		exportSvc.Start(context.Background())
		defer exportSvc.Stop()
	}

	authHandler := handler.NewAuthHandler(authSvc)
	patentHandler := handler.NewPatentHandler(patentSvc, metricsSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc, metricsSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	registrationHandler := handler.NewRegistrationHandler(registrationSvc, metricsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", middleware.JWT(authSvc), authHandler.Me)

	api.POST("/register/inventor", registrationHandler.RegisterInventor)
	api.POST("/register/reviewer", registrationHandler.RegisterReviewer)
	api.POST("/oppositions", registrationHandler.FileOpposition)

	api.GET("/stats", reportHandler.PublicStats)
	api.GET("/reports/domains", reportHandler.DomainDistribution)
	api.GET("/reports/types", reportHandler.TypeDistribution)
	api.GET("/reports/assignments", reportHandler.AssignmentJoinView)
	api.GET("/reports/granted-reviewers", reportHandler.GrantedReviewers)
	api.GET("/reports/qualifying-renewals", reportHandler.QualifyingRenewals)
	api.GET("/patents", patentHandler.List)
	api.GET("/patents/domains", patentHandler.Domains)
	api.GET("/patents/:id", patentHandler.Get)
	api.GET("/patents/:id/age", patentHandler.Age)

	inventor := api.Group("", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleInventor))
	inventor.POST("/patents", patentHandler.Create)
	inventor.GET("/inventor/patents", patentHandler.ListMine)
	inventor.GET("/inventor/patents/count", patentHandler.CountMine)

	reviewer := api.Group("/reviewer", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleReviewer))
	reviewer.GET("/assignments", reviewHandler.Pending)
	reviewer.GET("/history", reviewHandler.History)
	reviewer.POST("/patents/:id/review", reviewHandler.Submit)

	admin := api.Group("", middleware.JWT(authSvc), middleware.RequireRoles(models.RoleAdmin))
	admin.PUT("/patents/:id", patentHandler.Update)
	admin.PATCH("/patents/:id/status", patentHandler.SetStatus)
	admin.POST("/patents/:id/reviewers", reviewHandler.Assign)
	admin.GET("/patents/:id/reviewers", reviewHandler.ListForPatent)
	admin.GET("/admin/oppositions", registrationHandler.LatestOppositions)
	admin.GET("/reviewers/active", reviewHandler.ActiveReviewers)
	admin.GET("/reports/workload", reportHandler.ReviewerWorkload)
	if cfg.Exports.Enabled {
		exportHandler := handler.NewExportHandler(exportSvc)
		admin.GET("/reports/register/export", reportHandler.ExportRegister)
		admin.POST("/reports/register/exports", exportHandler.Enqueue)
		admin.GET("/reports/register/exports/:id", exportHandler.Status)
		api.GET("/reports/register/download", exportHandler.Download)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
