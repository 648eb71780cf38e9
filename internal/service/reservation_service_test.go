package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "nocturna/internal/errors"
	"nocturna/internal/live"
	"nocturna/internal/model"
	"nocturna/internal/repository"
	"nocturna/internal/testutil"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []live.Event
}

func (p *recordingPublisher) Publish(ev live.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func testReservationOptions() ReservationOptions {
	return ReservationOptions{
		VenueID:            testutil.VenueID,
		SlotCapacity:       30,
		TimeSlots:          []string{"20:15", "22:30"},
		PublicMaxPartySize: 6,
		AdminMaxPartySize:  20,
		BookingHorizonDays: 60,
		WriteTimeout:       5 * time.Second,
	}
}

func newReservationFixture(t *testing.T) (ReservationService, *recordingPublisher) {
	t.Helper()
	publisher := &recordingPublisher{}
	svc := NewReservationService(
		repository.NewReservationRepository(testutil.NewDB(t)),
		fixedCalendar(t, "2026-11-18 20:00"),
		publisher,
		testReservationOptions(),
		quietLogger(),
	)
	return svc, publisher
}

func guest(date, slot string, size int) ReservationInput {
	return ReservationInput{
		Name:      "Ana Ruiz",
		Contact:   "ana@example.com",
		Date:      date,
		TimeSlot:  slot,
		PartySize: size,
	}
}

func TestReservationService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         ReservationInput
		expectedError error
	}{
		{name: "successful booking", input: guest("2026-11-20", "20:15", 4)},
		{name: "party above public maximum", input: guest("2026-11-20", "20:15", 7), expectedError: apperrors.ErrInvalidPartySize},
		{name: "past date", input: guest("2026-11-17", "20:15", 2), expectedError: apperrors.ErrInvalidDate},
		{name: "beyond horizon", input: guest("2027-03-01", "20:15", 2), expectedError: apperrors.ErrInvalidDate},
		{name: "unknown slot", input: guest("2026-11-20", "21:00", 2), expectedError: apperrors.ErrInvalidSlot},
		{name: "bad contact", input: ReservationInput{Name: "Ana", Contact: "nope", Date: "2026-11-20", TimeSlot: "20:15", PartySize: 2}, expectedError: apperrors.ErrInvalidContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, publisher := newReservationFixture(t)

			reservation, err := svc.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, reservation)
				assert.Empty(t, publisher.types())
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, reservation.ID)
				assert.Equal(t, testutil.VenueID, reservation.VenueID)
				assert.Equal(t, []string{live.EventReservationCreated}, publisher.types())
			}
		})
	}
}

func TestReservationService_CreateRejectsWhenSlotFull(t *testing.T) {
	svc, _ := newReservationFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, guest("2026-11-20", "22:30", 6))
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, guest("2026-11-20", "22:30", 1))
	assert.ErrorIs(t, err, apperrors.ErrSlotFull)

	_, err = svc.Create(ctx, guest("2026-11-20", "20:15", 6))
	assert.NoError(t, err)
}

func TestReservationService_ConcurrentCreateNeverOverbooks(t *testing.T) {
	svc, _ := newReservationFixture(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		refused int
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, guest("2026-11-21", "20:15", 6))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, apperrors.ErrSlotFull) {
				refused++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	assert.Equal(t, 7, refused)

	slots, err := svc.Availability(ctx, "2026-11-21")
	require.NoError(t, err)
	assert.Equal(t, 30, slots[0].Booked)
	assert.Equal(t, 0, slots[0].Available)
	assert.Zero(t, svc.(*reservationService).slotLocks.Len(), "released slot locks are dropped")
}

func TestReservationService_Availability(t *testing.T) {
	svc, _ := newReservationFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, guest("2026-11-20", "20:15", 4))
	require.NoError(t, err)
	_, err = svc.Create(ctx, guest("2026-11-20", "20:15", 5))
	require.NoError(t, err)

	slots, err := svc.Availability(ctx, "2026-11-20")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, SlotAvailability{TimeSlot: "20:15", Limit: 30, Booked: 9, Available: 21}, slots[0])
	assert.Equal(t, SlotAvailability{TimeSlot: "22:30", Limit: 30, Booked: 0, Available: 30}, slots[1])
	for _, slot := range slots {
		assert.Equal(t, slot.Limit, slot.Booked+slot.Available)
	}

	_, err = svc.Availability(ctx, "tomorrow")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)
}

func TestReservationService_UpdateRechecksCapacity(t *testing.T) {
	svc, publisher := newReservationFixture(t)
	ctx := context.Background()

	mine, err := svc.Create(ctx, guest("2026-11-20", "20:15", 6))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, guest("2026-11-20", "20:15", 6))
		require.NoError(t, err)
	}

	// 24 booked; growing my own party to 12 fits because my 6 seats are excluded.
	input := guest("2026-11-20", "20:15", 12)
	updated, err := svc.Update(ctx, mine.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.PartySize)

	input.PartySize = 13
	_, err = svc.Update(ctx, mine.ID, input)
	assert.ErrorIs(t, err, apperrors.ErrSlotFull)

	input.PartySize = 21
	_, err = svc.Update(ctx, mine.ID, input)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPartySize)

	past := guest("2026-11-01", "22:30", 2)
	_, err = svc.Update(ctx, mine.ID, past)
	assert.NoError(t, err)

	_, err = svc.Update(ctx, uuid.New(), guest("2026-11-20", "22:30", 2))
	assert.ErrorIs(t, err, apperrors.ErrReservationNotFound)

	assert.Contains(t, publisher.types(), live.EventReservationUpdated)
}

func TestReservationService_DeletedReservationDisappears(t *testing.T) {
	svc, publisher := newReservationFixture(t)
	ctx := context.Background()

	gone, err := svc.Create(ctx, guest("2026-11-20", "20:15", 2))
	require.NoError(t, err)
	_, err = svc.Create(ctx, guest("2026-11-20", "20:15", 3))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, gone.ID))

	list, total, err := svc.List(ctx, repository.ReservationFilter{Date: "2026-11-20"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	for _, r := range list {
		assert.NotEqual(t, gone.ID, r.ID)
	}

	_, err = svc.Get(ctx, gone.ID)
	assert.ErrorIs(t, err, apperrors.ErrReservationNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, gone.ID), apperrors.ErrReservationNotFound)

	slots, err := svc.Availability(ctx, "2026-11-20")
	require.NoError(t, err)
	assert.Equal(t, 3, slots[0].Booked)
	assert.Contains(t, publisher.types(), live.EventReservationDeleted)
}

func TestReservationService_NewsletterSubscribers(t *testing.T) {
	svc, _ := newReservationFixture(t)
	ctx := context.Background()

	empty, err := svc.NewsletterSubscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, empty)

	in := guest("2026-11-20", "20:15", 2)
	in.WantsNewsletter = true
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)
	_, err = svc.Create(ctx, guest("2026-11-20", "22:30", 2))
	require.NoError(t, err)

	contacts, err := svc.NewsletterSubscribers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, contacts)
}

// MockReservationRepository is a mock implementation of ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *MockReservationRepository) Update(ctx context.Context, reservation *model.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

func (m *MockReservationRepository) List(ctx context.Context, filter repository.ReservationFilter) ([]model.Reservation, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *MockReservationRepository) BookedSeats(ctx context.Context, venueID uint, date, timeSlot string, excludeID uuid.UUID) (int, error) {
	args := m.Called(ctx, venueID, date, timeSlot, excludeID)
	return args.Int(0), args.Error(1)
}

func (m *MockReservationRepository) BookedSeatsBySlot(ctx context.Context, venueID uint, date string) (map[string]int, error) {
	args := m.Called(ctx, venueID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockReservationRepository) NewsletterContacts(ctx context.Context, venueID uint) ([]string, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReservationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ReservationRepository) error) error {
	return m.Called(ctx, fn).Error(0)
}

func TestReservationService_CreateWriteTimeout(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	mockRepo.On("WithTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(context.DeadlineExceeded)

	opts := testReservationOptions()
	opts.WriteTimeout = 20 * time.Millisecond
	publisher := &recordingPublisher{}
	svc := NewReservationService(mockRepo, fixedCalendar(t, "2026-11-18 20:00"), publisher, opts, quietLogger())

	reservation, err := svc.Create(context.Background(), guest("2026-11-20", "20:15", 2))

	assert.ErrorIs(t, err, apperrors.ErrWriteTimeout)
	assert.Nil(t, reservation)
	assert.Empty(t, publisher.types())
	mockRepo.AssertExpectations(t)
}

func TestReservationService_ListRejectsBadFilter(t *testing.T) {
	mockRepo := new(MockReservationRepository)
	svc := NewReservationService(mockRepo, fixedCalendar(t, "2026-11-18 20:00"), nil, testReservationOptions(), quietLogger())

	_, _, err := svc.List(context.Background(), repository.ReservationFilter{Date: "20-11-2026"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDate)

	_, _, err = svc.List(context.Background(), repository.ReservationFilter{TimeSlot: "23:00"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSlot)

	mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
