package service

import (
	"context"
	"fmt"

	"nocturna/internal/model"
	"nocturna/internal/repository"
)

// dashboardPageSize is large enough to cover every booking of one night.
const dashboardPageSize = 200

// DashboardSummary is the admin overview of one date.
type DashboardSummary struct {
	Date         string             `json:"date"`
	Slots        []SlotAvailability `json:"slots"`
	Reservations int64              `json:"reservations"`
	Covers       int                `json:"covers"`
	HeadCount    *model.HeadCount   `json:"headcount"`
}

// DashboardService aggregates reservations and headcount for the admin home.
type DashboardService interface {
	Summary(ctx context.Context, date string) (*DashboardSummary, error)
}

type dashboardService struct {
	reservations ReservationService
	headCount    HeadCountService
	calendar     *Calendar
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(reservations ReservationService, headCount HeadCountService, calendar *Calendar) DashboardService {
	return &dashboardService{reservations: reservations, headCount: headCount, calendar: calendar}
}

// Summary builds the overview for date; an empty date means tonight.
func (s *dashboardService) Summary(ctx context.Context, date string) (*DashboardSummary, error) {
	if date == "" {
		date = s.calendar.BusinessDay()
	}

	slots, err := s.reservations.Availability(ctx, date)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{Date: date, Slots: slots}
	for _, slot := range slots {
		summary.Covers += slot.Booked
	}

	_, total, err := s.reservations.List(ctx, repository.ReservationFilter{Date: date, Page: 1, PageSize: dashboardPageSize})
	if err != nil {
		return nil, err
	}
	summary.Reservations = total

	hc, err := s.headCount.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("current headcount: %w", err)
	}
	summary.HeadCount = hc

	return summary, nil
}
