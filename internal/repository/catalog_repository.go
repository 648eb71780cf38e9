package repository

import (
	"context"

	"gorm.io/gorm"

	"nocturna/internal/model"
)

// CatalogRepository reads the menu and FAQ content of a venue.
type CatalogRepository interface {
	Menu(ctx context.Context, venueID uint) ([]model.MenuCategory, error)
	FAQ(ctx context.Context, venueID uint) ([]model.FAQEntry, error)
	ReplaceMenu(ctx context.Context, venueID uint, categories []model.MenuCategory) error
	ReplaceFAQ(ctx context.Context, venueID uint, entries []model.FAQEntry) error
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// Menu returns categories with their available items, both ordered by position.
func (r *catalogRepository) Menu(ctx context.Context, venueID uint) ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("available = ?", true).Order("position ASC").Order("id ASC")
		}).
		Order("position ASC").Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// FAQ returns entries ordered by position.
func (r *catalogRepository) FAQ(ctx context.Context, venueID uint) ([]model.FAQEntry, error) {
	var entries []model.FAQEntry
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("position ASC").Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceMenu swaps the whole menu of a venue in one transaction.
func (r *catalogRepository) ReplaceMenu(ctx context.Context, venueID uint, categories []model.MenuCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&model.MenuCategory{}).Where("venue_id = ?", venueID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			if err := tx.Where("category_id IN ?", ids).Delete(&model.MenuItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ids).Delete(&model.MenuCategory{}).Error; err != nil {
				return err
			}
		}
		for i := range categories {
			categories[i].ID = 0
			categories[i].VenueID = venueID
			for j := range categories[i].Items {
				categories[i].Items[j].ID = 0
			}
			if err := tx.Create(&categories[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceFAQ swaps the FAQ of a venue in one transaction.
func (r *catalogRepository) ReplaceFAQ(ctx context.Context, venueID uint, entries []model.FAQEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venueID).Delete(&model.FAQEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].ID = 0
			entries[i].VenueID = venueID
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(entries, 100).Error
	})
}
