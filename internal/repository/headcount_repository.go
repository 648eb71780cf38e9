package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nocturna/internal/model"
)

// HeadCountRepository defines headcount persistence operations.
type HeadCountRepository interface {
	Find(ctx context.Context, venueID uint, date string) (*model.HeadCount, error)
	// Adjust adds delta to the day's count, creating the row if needed and
	// never letting the stored value drop below zero.
	Adjust(ctx context.Context, venueID uint, date string, delta int) (*model.HeadCount, error)
	Set(ctx context.Context, venueID uint, date string, count int) (*model.HeadCount, error)
}

type headCountRepository struct {
	db *gorm.DB
}

// NewHeadCountRepository creates a new headcount repository.
func NewHeadCountRepository(db *gorm.DB) HeadCountRepository {
	return &headCountRepository{db: db}
}

// Find returns the row for one venue and day.
func (r *headCountRepository) Find(ctx context.Context, venueID uint, date string) (*model.HeadCount, error) {
	var hc model.HeadCount
	if err := r.db.WithContext(ctx).Where("venue_id = ? AND date = ?", venueID, date).First(&hc).Error; err != nil {
		return nil, err
	}
	return &hc, nil
}

// Adjust applies delta with a single UPDATE so concurrent admins never lose increments.
func (r *headCountRepository) Adjust(ctx context.Context, venueID uint, date string, delta int) (*model.HeadCount, error) {
	var out model.HeadCount
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := model.HeadCount{VenueID: venueID, Date: date}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			return err
		}

		next := gorm.Expr("CASE WHEN people_inside + ? < 0 THEN 0 ELSE people_inside + ? END", delta, delta)
		if err := tx.Model(&model.HeadCount{}).
			Where("venue_id = ? AND date = ?", venueID, date).
			Updates(map[string]interface{}{"people_inside": next, "updated_at": time.Now()}).Error; err != nil {
			return err
		}

		return tx.Where("venue_id = ? AND date = ?", venueID, date).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Set overwrites the day's count (last write wins).
func (r *headCountRepository) Set(ctx context.Context, venueID uint, date string, count int) (*model.HeadCount, error) {
	row := model.HeadCount{VenueID: venueID, Date: date, Count: count, UpdatedAt: time.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "venue_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"people_inside", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return r.Find(ctx, venueID, date)
}
