package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "nocturna/internal/errors"
	"nocturna/internal/live"
	"nocturna/internal/repository"
	"nocturna/internal/testutil"
)

func newHeadCountFixture(t *testing.T, at string) (HeadCountService, repository.HeadCountRepository, *recordingPublisher) {
	t.Helper()
	repo := repository.NewHeadCountRepository(testutil.NewDB(t))
	publisher := &recordingPublisher{}
	svc := NewHeadCountService(repo, nil, fixedCalendar(t, at), publisher, testutil.VenueID, 5*time.Second, quietLogger())
	return svc, repo, publisher
}

func TestHeadCountService_CurrentWithoutRow(t *testing.T) {
	svc, _, _ := newHeadCountFixture(t, "2026-11-18 21:00")

	hc, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, hc.Count)
	assert.Equal(t, "2026-11-18", hc.Date)
}

func TestHeadCountService_Operations(t *testing.T) {
	svc, _, publisher := newHeadCountFixture(t, "2026-11-18 23:00")
	ctx := context.Background()

	hc, err := svc.Increment(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, hc.Count)

	hc, err = svc.Decrement(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, hc.Count)

	hc, err = svc.Decrement(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, hc.Count)

	hc, err = svc.Set(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, hc.Count)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, current.Count)

	hc, err = svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, hc.Count)

	types := publisher.types()
	assert.Len(t, types, 5)
	for _, typ := range types {
		assert.Equal(t, live.EventHeadCount, typ)
	}
}

func TestHeadCountService_RejectsBadCounts(t *testing.T) {
	svc, _, publisher := newHeadCountFixture(t, "2026-11-18 23:00")
	ctx := context.Background()

	_, err := svc.Increment(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCount)
	_, err = svc.Decrement(ctx, -3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCount)
	_, err = svc.Set(ctx, -1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCount)

	assert.Empty(t, publisher.types())
}

func TestHeadCountService_CountsBelongToTheNight(t *testing.T) {
	svc, repo, _ := newHeadCountFixture(t, "2026-11-19 03:30")
	ctx := context.Background()

	_, err := svc.Increment(ctx, 7)
	require.NoError(t, err)

	hc, err := repo.Find(ctx, testutil.VenueID, "2026-11-18")
	require.NoError(t, err)
	assert.Equal(t, 7, hc.Count)

	_, err = repo.Find(ctx, testutil.VenueID, "2026-11-19")
	assert.Error(t, err)
}

func TestHeadCountService_ConcurrentIncrementsAreNotLost(t *testing.T) {
	svc, _, _ := newHeadCountFixture(t, "2026-11-18 23:00")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Increment(ctx, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	hc, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, hc.Count)
}
