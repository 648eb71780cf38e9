package service

import (
	"context"
	"fmt"
	"time"

	"nocturna/internal/cache"
	"nocturna/internal/model"
	"nocturna/internal/repository"
)

const menuCacheTTL = 5 * time.Minute

// CatalogService serves the menu and FAQ of the venue.
type CatalogService interface {
	Menu(ctx context.Context) ([]model.MenuCategory, error)
	FAQ(ctx context.Context) ([]model.FAQEntry, error)
	ReplaceMenu(ctx context.Context, categories []model.MenuCategory) error
	ReplaceFAQ(ctx context.Context, entries []model.FAQEntry) error
}

type catalogService struct {
	repo    repository.CatalogRepository
	cache   *cache.Client
	venueID uint
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, cacheClient *cache.Client, venueID uint) CatalogService {
	return &catalogService{repo: repo, cache: cacheClient, venueID: venueID}
}

func (s *catalogService) menuKey() string {
	return fmt.Sprintf("menu:%d", s.venueID)
}

func (s *catalogService) faqKey() string {
	return fmt.Sprintf("faq:%d", s.venueID)
}

// Menu returns the menu, from cache when possible.
func (s *catalogService) Menu(ctx context.Context) ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	if s.cache.GetJSON(ctx, s.menuKey(), &categories) {
		return categories, nil
	}

	categories, err := s.repo.Menu(ctx, s.venueID)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if categories == nil {
		categories = []model.MenuCategory{}
	}
	s.cache.SetJSON(ctx, s.menuKey(), categories, menuCacheTTL)
	return categories, nil
}

// FAQ returns the FAQ entries.
func (s *catalogService) FAQ(ctx context.Context) ([]model.FAQEntry, error) {
	var entries []model.FAQEntry
	if s.cache.GetJSON(ctx, s.faqKey(), &entries) {
		return entries, nil
	}

	entries, err := s.repo.FAQ(ctx, s.venueID)
	if err != nil {
		return nil, fmt.Errorf("load faq: %w", err)
	}
	if entries == nil {
		entries = []model.FAQEntry{}
	}
	s.cache.SetJSON(ctx, s.faqKey(), entries, menuCacheTTL)
	return entries, nil
}

// ReplaceMenu swaps the menu and drops the cached copy.
func (s *catalogService) ReplaceMenu(ctx context.Context, categories []model.MenuCategory) error {
	if err := s.repo.ReplaceMenu(ctx, s.venueID, categories); err != nil {
		return fmt.Errorf("replace menu: %w", err)
	}
	_ = s.cache.Delete(ctx, s.menuKey())
	return nil
}

// ReplaceFAQ swaps the FAQ and drops the cached copy.
func (s *catalogService) ReplaceFAQ(ctx context.Context, entries []model.FAQEntry) error {
	if err := s.repo.ReplaceFAQ(ctx, s.venueID, entries); err != nil {
		return fmt.Errorf("replace faq: %w", err)
	}
	_ = s.cache.Delete(ctx, s.faqKey())
	return nil
}
