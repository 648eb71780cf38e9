package repository

import (
	"context"

	"gorm.io/gorm"

	"nocturna/internal/model"
)

// VenueRepository defines venue persistence operations.
type VenueRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Venue, error)
	FindByIDOrCreate(ctx context.Context, venue *model.Venue) (*model.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository.
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// FindByID finds a venue by ID.
func (r *venueRepository) FindByID(ctx context.Context, id uint) (*model.Venue, error) {
	var venue model.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// FindByIDOrCreate finds a venue by ID or creates it if it doesn't exist.
func (r *venueRepository) FindByIDOrCreate(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	var existing model.Venue
	err := r.db.WithContext(ctx).First(&existing, venue.ID).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return nil, err
	}
	return venue, nil
}
