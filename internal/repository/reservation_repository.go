package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nocturna/internal/model"
)

// ReservationFilter narrows admin listings. Zero values mean "any".
type ReservationFilter struct {
	VenueID  uint
	Date     string
	TimeSlot string
	Page     int
	PageSize int
}

// ReservationRepository defines reservation persistence operations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	Update(ctx context.Context, reservation *model.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	List(ctx context.Context, filter ReservationFilter) ([]model.Reservation, int64, error)
	// BookedSeats sums party sizes of a slot, ignoring excludeID (uuid.Nil ignores nothing).
	BookedSeats(ctx context.Context, venueID uint, date, timeSlot string, excludeID uuid.UUID) (int, error)
	BookedSeatsBySlot(ctx context.Context, venueID uint, date string) (map[string]int, error)
	NewsletterContacts(ctx context.Context, venueID uint) ([]string, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ReservationRepository) error) error
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// Create creates a new reservation.
func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

// Update saves every field of an existing reservation.
func (r *reservationRepository) Update(ctx context.Context, reservation *model.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

// Delete soft-deletes a reservation. Deleting a missing row yields gorm.ErrRecordNotFound.
func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reservation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a reservation by ID.
func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// List returns one page of reservations ordered by date, slot and creation time,
// plus the total number of matching rows.
func (r *reservationRepository) List(ctx context.Context, filter ReservationFilter) ([]model.Reservation, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Reservation{})
	if filter.VenueID != 0 {
		query = query.Where("venue_id = ?", filter.VenueID)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.TimeSlot != "" {
		query = query.Where("time_slot = ?", filter.TimeSlot)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, size := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 200 {
		size = 50
	}

	var reservations []model.Reservation
	err := query.Session(&gorm.Session{}).Order("date ASC").Order("time_slot ASC").Order("created_at ASC").
		Offset((page - 1) * size).Limit(size).
		Find(&reservations).Error
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// BookedSeats sums party sizes for one slot.
func (r *reservationRepository) BookedSeats(ctx context.Context, venueID uint, date, timeSlot string, excludeID uuid.UUID) (int, error) {
	query := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("venue_id = ? AND date = ? AND time_slot = ?", venueID, date, timeSlot)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var total int
	if err := query.Select("COALESCE(SUM(party_size), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// BookedSeatsBySlot sums party sizes for every slot of a date.
func (r *reservationRepository) BookedSeatsBySlot(ctx context.Context, venueID uint, date string) (map[string]int, error) {
	var rows []struct {
		TimeSlot string
		Booked   int
	}
	err := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Select("time_slot, COALESCE(SUM(party_size), 0) AS booked").
		Where("venue_id = ? AND date = ?", venueID, date).
		Group("time_slot").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	booked := make(map[string]int, len(rows))
	for _, row := range rows {
		booked[row.TimeSlot] = row.Booked
	}
	return booked, nil
}

// NewsletterContacts lists distinct contacts that opted into the newsletter.
func (r *reservationRepository) NewsletterContacts(ctx context.Context, venueID uint) ([]string, error) {
	var contacts []string
	err := r.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("venue_id = ? AND wants_newsletter = ?", venueID, true).
		Distinct("contact").
		Order("contact ASC").
		Pluck("contact", &contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// WithTransaction executes a function within a database transaction.
func (r *reservationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ReservationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &reservationRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
