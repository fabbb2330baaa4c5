package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"standsreg/internal/config"
	"standsreg/internal/handlers"
	"standsreg/internal/middleware"
	"standsreg/internal/repositories"
	"standsreg/internal/repositories/cache"
	"standsreg/internal/routes"
	"standsreg/internal/services/application"
	"standsreg/internal/services/auth"
	"standsreg/internal/services/company"
	"standsreg/internal/services/document"
	"standsreg/internal/services/report"
	"standsreg/internal/services/setting"
	"standsreg/internal/services/user"
	"standsreg/internal/storage/blob"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	db, err := repositories.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var cacheService *cache.CacheService
	redisClient := cache.NewRedisClient(cfg)
	candidate := cache.NewCacheService(redisClient, 15*time.Minute)
	if err := candidate.HealthCheck(context.Background()); err != nil {
		log.Printf("redis unavailable, user cache disabled: %v", err)
	} else {
		cacheService = candidate
		// Stale user entries from a previous schema are worse than a cold
		// cache.
		if err := cacheService.FlushAll(context.Background()); err != nil {
			log.Printf("cache flush failed: %v", err)
		}
	}

	userRepo := repositories.NewUserRepository(db, cacheService)
	appRepo := repositories.NewApplicationRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)

	authService, err := auth.NewService(userRepo, auth.Config{
		Secret:     cfg.JWTSecret,
		Algorithm:  cfg.JWTAlgorithm,
		ExpiresMin: cfg.JWTExpiresMin,
	})
	if err != nil {
		log.Fatalf("auth service init failed: %v", err)
	}

	blobStore := blob.NewClient(cfg.BlobEndpoint, cfg.BlobToken)
	appService := application.NewService(appRepo)
	docService := document.NewService(appRepo, blobStore)
	reportService := report.NewService(appRepo)
	settingService := setting.NewService(settingRepo)
	companyService := company.NewService(companyRepo)
	userService := user.NewService(userRepo)

	app := fiber.New(fiber.Config{
		AppName:   "standsreg-api",
		BodyLimit: 12 * 1024 * 1024,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Files uploaded before blob storage still live on disk.
	app.Static("/uploads", cfg.UploadDir)

	authMW := middleware.NewAuthMiddleware(authService)
	routes.Setup(app, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Application: handlers.NewApplicationHandler(appService),
		Document:    handlers.NewDocumentHandler(docService),
		Admin:       handlers.NewAdminHandler(appService, userService, auditRepo),
		Report:      handlers.NewReportHandler(reportService),
		Setting:     handlers.NewSettingHandler(settingService),
		Company:     handlers.NewCompanyHandler(companyService),
	}, authMW)

	log.Printf("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
