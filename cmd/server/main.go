package main

import (
	"context"
	"log"
	"net/http"

	"careconnect/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"careconnect/internal/auth"
	"careconnect/internal/cache"
	"careconnect/internal/config"
	"careconnect/internal/db"
	"careconnect/internal/handler"
	"careconnect/internal/mail"
	"careconnect/internal/repository"
	"careconnect/internal/router"
	"careconnect/internal/service"
)

// @title CareConnect API
// @version 1.0
// @description Elder-care scheduling API: caregivers, family members and an admin back-office.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	caregiverRepo := repository.NewCaregiverProfileRepository(gormDB)
	elderlyRepo := repository.NewElderlyProfileRepository(gormDB)
	scheduleRepo := repository.NewScheduleRepository(gormDB)
	assignmentRepo := repository.NewAssignmentRepository(gormDB)
	requestRepo := repository.NewRequestRepository(gormDB)
	logRepo := repository.NewLogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Outbound mail: SES when configured, console otherwise
	var mailer mail.Mailer = mail.ConsoleMailer{}
	if cfg.SESFromEmail != "" {
		sesMailer, err := mail.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
		if err != nil {
			log.Fatalf("mailer init: %v", err)
		}
		mailer = sesMailer
	} else {
		log.Println("SES_FROM_EMAIL not set, reminder mail goes to the log")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg.AdminSignupCodes)
	profileService := service.NewProfileService(caregiverRepo, elderlyRepo, cacheClient)
	scheduleService := service.NewScheduleService(scheduleRepo, assignmentRepo, elderlyRepo)
	requestService := service.NewRequestService(requestRepo, caregiverRepo, elderlyRepo)
	logService := service.NewLogService(logRepo, caregiverRepo, elderlyRepo)
	backofficeService := service.NewBackofficeService(scheduleRepo, mailer)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	caregiverHandler := handler.NewCaregiverHandler(profileService, requestService, logService)
	familyHandler := handler.NewFamilyHandler(profileService, scheduleService, requestService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	adminHandler := handler.NewAdminHandler(backofficeService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		caregiverHandler,
		familyHandler,
		scheduleHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
