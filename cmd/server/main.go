package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata" // venue zone must resolve on minimal images

	_ "nocturna/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"nocturna/internal/auth"
	"nocturna/internal/cache"
	"nocturna/internal/config"
	"nocturna/internal/db"
	"nocturna/internal/handler"
	"nocturna/internal/live"
	"nocturna/internal/logger"
	"nocturna/internal/model"
	"nocturna/internal/repository"
	"nocturna/internal/router"
	"nocturna/internal/service"
)

const hubBuffer = 16

// @title Nocturna API
// @version 1.0
// @description Reservations, live headcount and admin dashboard of the venue.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		log.WithError(err).Fatal("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.WithError(err).Warn("drop tables")
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.WithError(err).Fatal("auto-migrate")
	}

	calendar, err := service.NewCalendar(cfg.VenueTimezone, cfg.BusinessDayCutoffHour)
	if err != nil {
		log.WithError(err).Fatal("venue calendar")
	}

	// Initialize repositories
	venueRepo := repository.NewVenueRepository(gormDB)
	reservationRepo := repository.NewReservationRepository(gormDB)
	headCountRepo := repository.NewHeadCountRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	catalogRepo := repository.NewCatalogRepository(gormDB)

	venue, err := venueRepo.FindByIDOrCreate(context.Background(), &model.Venue{
		ID:       cfg.VenueID,
		Name:     "Nocturna",
		Slug:     "nocturna",
		Timezone: cfg.VenueTimezone,
	})
	if err != nil {
		log.WithError(err).Fatal("load venue")
	}
	log.WithFields(logrus.Fields{"venue_id": venue.ID, "venue": venue.Name}).Info("venue ready")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.WithError(err).Warn("redis unavailable, running without cache")
	}

	hub := live.NewHub(hubBuffer, log)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService, sessionStore, cfg.SessionTTL, log)
	reservationService := service.NewReservationService(reservationRepo, calendar, hub, service.ReservationOptions{
		VenueID:            venue.ID,
		SlotCapacity:       cfg.SlotCapacity,
		TimeSlots:          cfg.TimeSlots,
		PublicMaxPartySize: cfg.PublicMaxPartySize,
		AdminMaxPartySize:  cfg.AdminMaxPartySize,
		BookingHorizonDays: cfg.BookingHorizonDays,
		WriteTimeout:       cfg.WriteTimeout,
	}, log)
	headCountService := service.NewHeadCountService(headCountRepo, cacheClient, calendar, hub, venue.ID, cfg.WriteTimeout, log)
	catalogService := service.NewCatalogService(catalogRepo, cacheClient, venue.ID)
	dashboardService := service.NewDashboardService(reservationService, headCountService, calendar)

	poller := live.NewPoller(headCountService, hub, cfg.SSEInterval, log)
	poller.Start()
	defer poller.Stop()

	e := echo.New()
	e.HideBanner = true
	// Shutdown waits for idle connections; open streams end only when the hub closes.
	e.Server.RegisterOnShutdown(hub.Close)

	// Register routes
	router.Register(e, cfg, log, router.Handlers{
		Health:      handler.NewHealthHandler(gormDB, cacheClient),
		Auth:        handler.NewAuthHandler(authService),
		Reservation: handler.NewReservationHandler(reservationService),
		HeadCount:   handler.NewHeadCountHandler(headCountService),
		Live:        handler.NewLiveHandler(hub, headCountService, authService, log),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}, jwtService, authService)

	log.Infof("Swagger documentation available at: %s", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}

func swaggerURL(host, port string) string {
	if host == "" {
		return "http://localhost:" + port + "/swagger/index.html"
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host + "/swagger/index.html"
	}
	return "http://" + host + "/swagger/index.html"
}
