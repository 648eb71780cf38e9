package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"nocturna/internal/cache"
	apperrors "nocturna/internal/errors"
	"nocturna/internal/live"
	"nocturna/internal/model"
	"nocturna/internal/repository"
)

const (
	headCountCacheTTL = time.Minute
	maxHeadCount      = 100000
)

// HeadCountService maintains the number of people inside the venue.
type HeadCountService interface {
	Current(ctx context.Context) (*model.HeadCount, error)
	Increment(ctx context.Context, n int) (*model.HeadCount, error)
	Decrement(ctx context.Context, n int) (*model.HeadCount, error)
	Reset(ctx context.Context) (*model.HeadCount, error)
	Set(ctx context.Context, n int) (*model.HeadCount, error)
}

type headCountService struct {
	repo         repository.HeadCountRepository
	cache        *cache.Client
	calendar     *Calendar
	publisher    Publisher
	venueID      uint
	writeTimeout time.Duration
	log          *logrus.Logger
}

var _ live.CountSource = (*headCountService)(nil)

// NewHeadCountService creates a new headcount service.
func NewHeadCountService(
	repo repository.HeadCountRepository,
	cacheClient *cache.Client,
	calendar *Calendar,
	publisher Publisher,
	venueID uint,
	writeTimeout time.Duration,
	log *logrus.Logger,
) HeadCountService {
	return &headCountService{
		repo:         repo,
		cache:        cacheClient,
		calendar:     calendar,
		publisher:    publisher,
		venueID:      venueID,
		writeTimeout: writeTimeout,
		log:          log,
	}
}

func (s *headCountService) cacheKey(date string) string {
	return fmt.Sprintf("headcount:%d:%s", s.venueID, date)
}

// Current returns tonight's count. A day without a row counts as zero.
func (s *headCountService) Current(ctx context.Context) (*model.HeadCount, error) {
	date := s.calendar.BusinessDay()
	key := s.cacheKey(date)

	var cached model.HeadCount
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	hc, err := s.repo.Find(ctx, s.venueID, date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find headcount: %w", err)
		}
		hc = &model.HeadCount{VenueID: s.venueID, Date: date}
	}

	s.cache.SetJSON(ctx, key, hc, headCountCacheTTL)
	return hc, nil
}

// Increment adds n people.
func (s *headCountService) Increment(ctx context.Context, n int) (*model.HeadCount, error) {
	if n < 1 || n > maxHeadCount {
		return nil, apperrors.ErrInvalidCount
	}
	return s.adjust(ctx, n)
}

// Decrement removes n people; the count stops at zero.
func (s *headCountService) Decrement(ctx context.Context, n int) (*model.HeadCount, error) {
	if n < 1 || n > maxHeadCount {
		return nil, apperrors.ErrInvalidCount
	}
	return s.adjust(ctx, -n)
}

// Reset sets tonight's count back to zero.
func (s *headCountService) Reset(ctx context.Context) (*model.HeadCount, error) {
	return s.Set(ctx, 0)
}

// Set overwrites tonight's count.
func (s *headCountService) Set(ctx context.Context, n int) (*model.HeadCount, error) {
	if n < 0 || n > maxHeadCount {
		return nil, apperrors.ErrInvalidCount
	}
	return s.write(ctx, "set", n, func(ctx context.Context, date string) (*model.HeadCount, error) {
		return s.repo.Set(ctx, s.venueID, date, n)
	})
}

func (s *headCountService) adjust(ctx context.Context, delta int) (*model.HeadCount, error) {
	return s.write(ctx, "adjust", delta, func(ctx context.Context, date string) (*model.HeadCount, error) {
		return s.repo.Adjust(ctx, s.venueID, date, delta)
	})
}

// write runs one mutation under the write timeout, then refreshes the
// cache and notifies stream subscribers.
func (s *headCountService) write(ctx context.Context, op string, value int, fn func(ctx context.Context, date string) (*model.HeadCount, error)) (*model.HeadCount, error) {
	date := s.calendar.BusinessDay()

	wctx := ctx
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	hc, err := fn(wctx, date)
	if err != nil {
		if errors.Is(wctx.Err(), context.DeadlineExceeded) {
			return nil, apperrors.ErrWriteTimeout
		}
		return nil, fmt.Errorf("%s headcount: %w", op, err)
	}

	key := s.cacheKey(date)
	_ = s.cache.Delete(ctx, key)
	s.cache.SetJSON(ctx, key, hc, headCountCacheTTL)

	s.log.WithFields(logrus.Fields{
		"venue_id": s.venueID,
		"date":     date,
		"op":       op,
		"value":    value,
		"count":    hc.Count,
	}).Info("headcount changed")

	if s.publisher != nil {
		s.publisher.Publish(live.CountEvent(hc))
	}
	return hc, nil
}
