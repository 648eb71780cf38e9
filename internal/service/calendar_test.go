package service

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "nocturna/internal/errors"
)

func fixedCalendar(t *testing.T, at string) *Calendar {
	t.Helper()
	cal, err := NewCalendar("Europe/Madrid", 6)
	require.NoError(t, err)
	now, err := time.ParseInLocation("2006-01-02 15:04", at, cal.Location())
	require.NoError(t, err)
	return cal.WithClock(func() time.Time { return now })
}

func TestNewCalendar_RejectsBadInput(t *testing.T) {
	_, err := NewCalendar("Mars/Olympus", 6)
	assert.Error(t, err)

	_, err = NewCalendar("Europe/Madrid", 24)
	assert.Error(t, err)
}

func TestCalendar_BusinessDay(t *testing.T) {
	tests := []struct {
		name string
		at   string
		want string
	}{
		{name: "evening", at: "2026-11-18 23:30", want: "2026-11-18"},
		{name: "after midnight", at: "2026-11-19 02:15", want: "2026-11-18"},
		{name: "at cutoff", at: "2026-11-19 06:00", want: "2026-11-19"},
		{name: "new year night", at: "2027-01-01 04:00", want: "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fixedCalendar(t, tt.at).BusinessDay())
		})
	}
}

func TestCalendar_DaysFromTodayAcrossDST(t *testing.T) {
	// Europe/Madrid leaves summer time on 2026-10-25.
	cal := fixedCalendar(t, "2026-10-24 12:00")

	day, err := cal.ParseDate("2026-10-26")
	require.NoError(t, err)
	assert.Equal(t, 2, cal.DaysFromToday(day))

	day, err = cal.ParseDate("2026-10-23")
	require.NoError(t, err)
	assert.Equal(t, -1, cal.DaysFromToday(day))
}

func TestComputeAvailability(t *testing.T) {
	tests := []struct {
		name          string
		limit, booked int
		wantAvailable int
	}{
		{name: "empty slot", limit: 30, booked: 0, wantAvailable: 30},
		{name: "partly booked", limit: 30, booked: 22, wantAvailable: 8},
		{name: "full", limit: 30, booked: 30, wantAvailable: 0},
		{name: "over-booked by hand", limit: 30, booked: 34, wantAvailable: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAvailability("20:15", tt.limit, tt.booked)
			assert.Equal(t, tt.wantAvailable, got.Available)
			assert.GreaterOrEqual(t, got.Available, 0)
			if tt.booked <= tt.limit {
				assert.Equal(t, tt.limit, got.Booked+got.Available)
			}
		})
	}

	assert.True(t, ComputeAvailability("22:30", 30, 24).Fits(6))
	assert.False(t, ComputeAvailability("22:30", 30, 25).Fits(6))
}

func TestReservationValidator(t *testing.T) {
	v := NewReservationValidator(fixedCalendar(t, "2026-11-18 20:00"), []string{"20:15", "22:30"})

	t.Run("contact", func(t *testing.T) {
		assert.True(t, v.ValidContact("ana@example.com"))
		assert.True(t, v.ValidContact("+34 612 345 678"))
		assert.False(t, v.ValidContact("ana@"))
		assert.False(t, v.ValidContact("12345"))
		assert.False(t, v.ValidContact(""))
	})

	t.Run("guest", func(t *testing.T) {
		ok := ReservationInput{Name: "Ana", Contact: "ana@example.com"}
		assert.NoError(t, v.ValidateGuest(ok))

		noName := ok
		noName.Name = ""
		assert.ErrorIs(t, v.ValidateGuest(noName), apperrors.ErrInvalidName)

		longNotes := ok
		longNotes.Notes = string(make([]rune, 501))
		assert.ErrorIs(t, v.ValidateGuest(longNotes), apperrors.ErrNotesTooLong)
	})

	t.Run("party size", func(t *testing.T) {
		assert.NoError(t, v.ValidatePartySize(6, 6))
		assert.ErrorIs(t, v.ValidatePartySize(7, 6), apperrors.ErrInvalidPartySize)
		assert.ErrorIs(t, v.ValidatePartySize(0, 6), apperrors.ErrInvalidPartySize)
	})

	t.Run("slot", func(t *testing.T) {
		assert.NoError(t, v.ValidateSlot("22:30"))
		assert.ErrorIs(t, v.ValidateSlot("21:00"), apperrors.ErrInvalidSlot)
		assert.ErrorIs(t, v.ValidateSlot("9pm"), apperrors.ErrInvalidSlot)
	})

	t.Run("bookable date", func(t *testing.T) {
		assert.NoError(t, v.ValidateBookableDate("2026-11-18", 60))
		assert.NoError(t, v.ValidateBookableDate("2027-01-17", 60))
		assert.ErrorIs(t, v.ValidateBookableDate("2027-01-18", 60), apperrors.ErrInvalidDate)
		assert.ErrorIs(t, v.ValidateBookableDate("2026-11-17", 60), apperrors.ErrInvalidDate)
		assert.ErrorIs(t, v.ValidateBookableDate("18/11/2026", 60), apperrors.ErrInvalidDate)
	})
}
