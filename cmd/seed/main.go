package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"nocturna/internal/auth"
	"nocturna/internal/cache"
	"nocturna/internal/config"
	"nocturna/internal/db"
	"nocturna/internal/logger"
	"nocturna/internal/model"
	"nocturna/internal/repository"
	"nocturna/internal/service"
)

// SeedData is the layout of the optional SEED_FILE.
type SeedData struct {
	Venue struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	} `json:"venue"`
	Admin struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"admin"`
	Menu []SeedCategory `json:"menu"`
	FAQ  []SeedFAQ      `json:"faq"`
}

// SeedCategory is one menu category with its items.
type SeedCategory struct {
	Name  string     `json:"name"`
	Items []SeedItem `json:"items"`
}

// SeedItem is one menu entry; price is a decimal string.
type SeedItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// SeedFAQ is one question and answer.
type SeedFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info("Starting seed script...")

	data, err := loadSeedData(os.Getenv("SEED_FILE"))
	if err != nil {
		log.WithError(err).Fatal("load seed data")
	}

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	log.Info("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	log.Info("Database migrations completed")

	ctx := context.Background()
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	venue, err := repository.NewVenueRepository(gormDB).FindByIDOrCreate(ctx, &model.Venue{
		ID:       cfg.VenueID,
		Name:     data.Venue.Name,
		Slug:     data.Venue.Slug,
		Timezone: cfg.VenueTimezone,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to seed venue")
	}

	authService := service.NewAuthService(
		repository.NewAdminRepository(gormDB),
		auth.NewJWTService(cfg.JWTSecret),
		auth.NewSessionStore(cacheClient),
		cfg.SessionTTL,
		log,
	)
	if err := seedAdmin(ctx, authService, data, log); err != nil {
		log.WithError(err).Fatal("Failed to seed admin")
	}

	catalogService := service.NewCatalogService(repository.NewCatalogRepository(gormDB), cacheClient, venue.ID)
	items, err := seedCatalog(ctx, catalogService, data)
	if err != nil {
		log.WithError(err).Fatal("Failed to seed catalog")
	}

	log.WithFields(logrus.Fields{
		"venue_id":   venue.ID,
		"categories": len(data.Menu),
		"items":      items,
		"faq":        len(data.FAQ),
	}).Info("Seed completed successfully!")
}

// loadSeedData reads path, or returns the built-in defaults when path is empty.
func loadSeedData(path string) (*SeedData, error) {
	if path == "" {
		return defaultSeedData(), nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data SeedData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	defaults := defaultSeedData()
	if data.Venue.Name == "" {
		data.Venue = defaults.Venue
	}
	if data.Admin.Email == "" {
		data.Admin = defaults.Admin
	}
	return &data, nil
}

// seedAdmin creates the admin account unless it already exists.
func seedAdmin(ctx context.Context, authService service.AuthService, data *SeedData, log *logrus.Logger) error {
	password := data.Admin.Password
	if env := os.Getenv("SEED_ADMIN_PASSWORD"); env != "" {
		password = env
	}

	admin, err := authService.CreateAdmin(ctx, data.Admin.Name, data.Admin.Email, password)
	if errors.Is(err, service.ErrAdminAlreadyExists) {
		log.WithField("email", data.Admin.Email).Info("Admin already exists, skipped")
		return nil
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"admin_id": admin.ID, "email": admin.Email}).Info("Admin created")
	return nil
}

// seedCatalog replaces menu and FAQ with the seed content.
func seedCatalog(ctx context.Context, catalogService service.CatalogService, data *SeedData) (int, error) {
	categories := make([]model.MenuCategory, 0, len(data.Menu))
	items := 0
	for i, cat := range data.Menu {
		category := model.MenuCategory{Name: cat.Name, Position: i}
		for j, item := range cat.Items {
			price, err := decimal.NewFromString(item.Price)
			if err != nil {
				return 0, fmt.Errorf("invalid price %q for %s: %w", item.Price, item.Name, err)
			}
			category.Items = append(category.Items, model.MenuItem{
				Name:        item.Name,
				Description: item.Description,
				Price:       price,
				Position:    j,
				Available:   true,
			})
			items++
		}
		categories = append(categories, category)
	}

	if err := catalogService.ReplaceMenu(ctx, categories); err != nil {
		return 0, err
	}

	entries := make([]model.FAQEntry, 0, len(data.FAQ))
	for i, faq := range data.FAQ {
		entries = append(entries, model.FAQEntry{Question: faq.Question, Answer: faq.Answer, Position: i})
	}
	if err := catalogService.ReplaceFAQ(ctx, entries); err != nil {
		return 0, err
	}

	return items, nil
}

func defaultSeedData() *SeedData {
	data := &SeedData{}
	data.Venue.Name = "Nocturna"
	data.Venue.Slug = "nocturna"
	data.Admin.Name = "Admin"
	data.Admin.Email = "admin@nocturna.local"
	data.Admin.Password = "change-me-now"
	data.Menu = []SeedCategory{
		{
			Name: "Cocktails",
			Items: []SeedItem{
				{Name: "Negroni", Description: "Gin, vermouth rosso, Campari", Price: "11.50"},
				{Name: "Mojito", Description: "Rum, lime, mint, soda", Price: "10.00"},
				{Name: "Espresso Martini", Description: "Vodka, coffee liqueur, espresso", Price: "12.00"},
			},
		},
		{
			Name: "Beer & Wine",
			Items: []SeedItem{
				{Name: "Draft beer", Price: "3.50"},
				{Name: "House red", Description: "Glass", Price: "4.50"},
			},
		},
		{
			Name: "Soft drinks",
			Items: []SeedItem{
				{Name: "Sparkling water", Price: "2.50"},
				{Name: "Tonic", Price: "3.00"},
			},
		},
	}
	data.FAQ = []SeedFAQ{
		{Question: "Do I need a reservation?", Answer: "Walk-ins are welcome, but tables in the 20:15 and 22:30 slots are reserved first."},
		{Question: "How large can my group be?", Answer: "Online bookings take up to 6 people. Call us for larger groups."},
		{Question: "Is there a dress code?", Answer: "Smart casual."},
	}
	return data
}
