package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	apperrors "nocturna/internal/errors"
	"nocturna/internal/live"
	"nocturna/internal/model"
	"nocturna/internal/repository"
)

// Publisher receives domain events for live streams.
type Publisher interface {
	Publish(ev live.Event)
}

// ReservationInput is the editable part of a reservation.
type ReservationInput struct {
	Name            string
	Contact         string
	Date            string
	TimeSlot        string
	PartySize       int
	Notes           string
	WantsNewsletter bool
}

// ReservationOptions are the venue rules applied to bookings.
type ReservationOptions struct {
	VenueID            uint
	SlotCapacity       int
	TimeSlots          []string
	PublicMaxPartySize int
	AdminMaxPartySize  int
	BookingHorizonDays int
	WriteTimeout       time.Duration
}

// ReservationService handles table bookings.
type ReservationService interface {
	Create(ctx context.Context, input ReservationInput) (*model.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	List(ctx context.Context, filter repository.ReservationFilter) ([]model.Reservation, int64, error)
	Update(ctx context.Context, id uuid.UUID, input ReservationInput) (*model.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Availability(ctx context.Context, date string) ([]SlotAvailability, error)
	NewsletterSubscribers(ctx context.Context) ([]string, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	validator *ReservationValidator
	publisher Publisher
	opts      ReservationOptions
	log       *logrus.Logger
	// Per-slot locking
	slotLocks slotLocks
}

// NewReservationService creates a new reservation service.
func NewReservationService(
	repo repository.ReservationRepository,
	calendar *Calendar,
	publisher Publisher,
	opts ReservationOptions,
	log *logrus.Logger,
) ReservationService {
	return &reservationService{
		repo:      repo,
		validator: NewReservationValidator(calendar, opts.TimeSlots),
		publisher: publisher,
		opts:      opts,
		log:       log,
	}
}

// lockSlot serializes writes to one (date, slot) pair until the returned func runs.
func (s *reservationService) lockSlot(date, timeSlot string) func() {
	return s.slotLocks.Lock(fmt.Sprintf("%d|%s|%s", s.opts.VenueID, date, timeSlot))
}

// withWriteTimeout bounds a write; running out of time maps to ErrWriteTimeout.
func (s *reservationService) withWriteTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.opts.WriteTimeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	err := fn(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.ErrWriteTimeout
	}
	return err
}

// Create books a table from the public form.
func (s *reservationService) Create(ctx context.Context, input ReservationInput) (*model.Reservation, error) {
	s.validator.Normalize(&input)
	if err := s.validator.ValidateGuest(input); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateBookableDate(input.Date, s.opts.BookingHorizonDays); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSlot(input.TimeSlot); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePartySize(input.PartySize, s.opts.PublicMaxPartySize); err != nil {
		return nil, err
	}

	reservation := &model.Reservation{
		VenueID:         s.opts.VenueID,
		Name:            input.Name,
		Contact:         input.Contact,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		PartySize:       input.PartySize,
		Notes:           input.Notes,
		WantsNewsletter: input.WantsNewsletter,
	}

	unlock := s.lockSlot(input.Date, input.TimeSlot)
	defer unlock()

	err := s.withWriteTimeout(ctx, func(ctx context.Context) error {
		return s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.ReservationRepository) error {
			booked, err := repo.BookedSeats(ctx, s.opts.VenueID, input.Date, input.TimeSlot, uuid.Nil)
			if err != nil {
				return fmt.Errorf("sum booked seats: %w", err)
			}
			if !ComputeAvailability(input.TimeSlot, s.opts.SlotCapacity, booked).Fits(input.PartySize) {
				return apperrors.ErrSlotFull
			}
			if err := repo.Create(ctx, reservation); err != nil {
				return fmt.Errorf("create reservation: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"date": input.Date,
			"slot": input.TimeSlot,
			"size": input.PartySize,
		}).Warn("reservation rejected")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"reservation_id": reservation.ID,
		"date":           reservation.Date,
		"slot":           reservation.TimeSlot,
		"size":           reservation.PartySize,
	}).Info("reservation created")
	s.publish(live.EventReservationCreated, reservation)

	return reservation, nil
}

// Get retrieves one reservation.
func (s *reservationService) Get(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReservationNotFound
		}
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if reservation.VenueID != s.opts.VenueID {
		return nil, apperrors.ErrReservationNotFound
	}
	return reservation, nil
}

// List returns a page of reservations for the venue.
func (s *reservationService) List(ctx context.Context, filter repository.ReservationFilter) ([]model.Reservation, int64, error) {
	filter.VenueID = s.opts.VenueID
	if filter.Date != "" {
		if err := s.validator.ValidateDateFormat(filter.Date); err != nil {
			return nil, 0, err
		}
	}
	if filter.TimeSlot != "" {
		if err := s.validator.ValidateSlot(filter.TimeSlot); err != nil {
			return nil, 0, err
		}
	}

	reservations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, total, nil
}

// Update applies an admin edit. The admin form allows larger parties and
// past dates, but never more seats than the slot holds.
func (s *reservationService) Update(ctx context.Context, id uuid.UUID, input ReservationInput) (*model.Reservation, error) {
	s.validator.Normalize(&input)
	if err := s.validator.ValidateGuest(input); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateDateFormat(input.Date); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateSlot(input.TimeSlot); err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePartySize(input.PartySize, s.opts.AdminMaxPartySize); err != nil {
		return nil, err
	}

	unlock := s.lockSlot(input.Date, input.TimeSlot)
	defer unlock()

	var updated *model.Reservation
	err := s.withWriteTimeout(ctx, func(ctx context.Context) error {
		return s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.ReservationRepository) error {
			existing, err := repo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrReservationNotFound
				}
				return fmt.Errorf("find reservation: %w", err)
			}
			if existing.VenueID != s.opts.VenueID {
				return apperrors.ErrReservationNotFound
			}

			booked, err := repo.BookedSeats(ctx, s.opts.VenueID, input.Date, input.TimeSlot, id)
			if err != nil {
				return fmt.Errorf("sum booked seats: %w", err)
			}
			if !ComputeAvailability(input.TimeSlot, s.opts.SlotCapacity, booked).Fits(input.PartySize) {
				return apperrors.ErrSlotFull
			}

			existing.Name = input.Name
			existing.Contact = input.Contact
			existing.Date = input.Date
			existing.TimeSlot = input.TimeSlot
			existing.PartySize = input.PartySize
			existing.Notes = input.Notes
			existing.WantsNewsletter = input.WantsNewsletter
			if err := repo.Update(ctx, existing); err != nil {
				return fmt.Errorf("update reservation: %w", err)
			}
			updated = existing
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.WithField("reservation_id", id).Info("reservation updated")
	s.publish(live.EventReservationUpdated, updated)
	return updated, nil
}

// Delete removes a reservation; it disappears from every later query.
func (s *reservationService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.withWriteTimeout(ctx, func(ctx context.Context) error {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrReservationNotFound
			}
			return fmt.Errorf("delete reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithField("reservation_id", id).Info("reservation deleted")
	s.publish(live.EventReservationDeleted, map[string]string{"id": id.String()})
	return nil
}

// Availability reports free seats for every slot of a date.
func (s *reservationService) Availability(ctx context.Context, date string) ([]SlotAvailability, error) {
	if err := s.validator.ValidateDateFormat(date); err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedSeatsBySlot(ctx, s.opts.VenueID, date)
	if err != nil {
		return nil, fmt.Errorf("sum booked seats: %w", err)
	}

	slots := make([]SlotAvailability, 0, len(s.opts.TimeSlots))
	for _, slot := range s.opts.TimeSlots {
		slots = append(slots, ComputeAvailability(slot, s.opts.SlotCapacity, booked[slot]))
	}
	return slots, nil
}

// NewsletterSubscribers lists contacts that opted into the newsletter.
func (s *reservationService) NewsletterSubscribers(ctx context.Context) ([]string, error) {
	contacts, err := s.repo.NewsletterContacts(ctx, s.opts.VenueID)
	if err != nil {
		return nil, fmt.Errorf("list newsletter contacts: %w", err)
	}
	if contacts == nil {
		contacts = []string{}
	}
	return contacts, nil
}

func (s *reservationService) publish(eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(live.Event{Type: eventType, Data: data, At: time.Now()})
}
