package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nocturna/internal/model"
	"nocturna/internal/repository"
	"nocturna/internal/testutil"
)

func newReservation(date, slot string, size int, newsletter bool, contact string) *model.Reservation {
	return &model.Reservation{
		VenueID:         testutil.VenueID,
		Name:            "Guest",
		Contact:         contact,
		Date:            date,
		TimeSlot:        slot,
		PartySize:       size,
		WantsNewsletter: newsletter,
	}
}

func TestReservationRepository_BookedSeats(t *testing.T) {
	repo := repository.NewReservationRepository(testutil.NewDB(t))
	ctx := context.Background()

	first := newReservation("2026-11-20", "20:15", 4, false, "a@example.com")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, newReservation("2026-11-20", "20:15", 6, false, "b@example.com")))
	require.NoError(t, repo.Create(ctx, newReservation("2026-11-20", "22:30", 3, false, "c@example.com")))
	require.NoError(t, repo.Create(ctx, newReservation("2026-11-21", "20:15", 5, false, "d@example.com")))

	booked, err := repo.BookedSeats(ctx, testutil.VenueID, "2026-11-20", "20:15", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 10, booked)

	booked, err = repo.BookedSeats(ctx, testutil.VenueID, "2026-11-20", "20:15", first.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, booked)

	empty, err := repo.BookedSeats(ctx, testutil.VenueID, "2026-12-01", "20:15", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty)

	bySlot, err := repo.BookedSeatsBySlot(ctx, testutil.VenueID, "2026-11-20")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"20:15": 10, "22:30": 3}, bySlot)
}

func TestReservationRepository_DeleteHidesFromQueries(t *testing.T) {
	repo := repository.NewReservationRepository(testutil.NewDB(t))
	ctx := context.Background()

	keep := newReservation("2026-11-20", "22:30", 2, false, "keep@example.com")
	drop := newReservation("2026-11-20", "22:30", 5, false, "drop@example.com")
	require.NoError(t, repo.Create(ctx, keep))
	require.NoError(t, repo.Create(ctx, drop))

	require.NoError(t, repo.Delete(ctx, drop.ID))

	list, total, err := repo.List(ctx, repository.ReservationFilter{VenueID: testutil.VenueID, Date: "2026-11-20"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	_, err = repo.FindByID(ctx, drop.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	booked, err := repo.BookedSeats(ctx, testutil.VenueID, "2026-11-20", "22:30", uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, 2, booked)

	assert.ErrorIs(t, repo.Delete(ctx, drop.ID), gorm.ErrRecordNotFound)
}

func TestReservationRepository_ListPaging(t *testing.T) {
	repo := repository.NewReservationRepository(testutil.NewDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, newReservation("2026-11-20", "20:15", 1, false, "x@example.com")))
	}

	page, total, err := repo.List(ctx, repository.ReservationFilter{VenueID: testutil.VenueID, Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	last, _, err := repo.List(ctx, repository.ReservationFilter{VenueID: testutil.VenueID, Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestReservationRepository_NewsletterContacts(t *testing.T) {
	repo := repository.NewReservationRepository(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newReservation("2026-11-20", "20:15", 2, true, "b@example.com")))
	require.NoError(t, repo.Create(ctx, newReservation("2026-11-21", "20:15", 2, true, "b@example.com")))
	require.NoError(t, repo.Create(ctx, newReservation("2026-11-21", "22:30", 2, true, "a@example.com")))
	require.NoError(t, repo.Create(ctx, newReservation("2026-11-21", "22:30", 2, false, "c@example.com")))

	contacts, err := repo.NewsletterContacts(ctx, testutil.VenueID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, contacts)
}
