package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"nocturna/internal/errors"
	"nocturna/internal/model"
	"nocturna/internal/repository"
	"nocturna/internal/service"
)

const maxPageSize = 200

// ReservationHandler handles reservation endpoints.
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ReservationRequest represents the reservation form.
type ReservationRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	Contact         string `json:"contact" validate:"required,max=255"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"time_slot" validate:"required"`
	PartySize       int    `json:"party_size" validate:"required,min=1"`
	Notes           string `json:"notes" validate:"max=500"`
	WantsNewsletter bool   `json:"wants_newsletter"`
}

func (r ReservationRequest) input() service.ReservationInput {
	return service.ReservationInput{
		Name:            r.Name,
		Contact:         r.Contact,
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		PartySize:       r.PartySize,
		Notes:           r.Notes,
		WantsNewsletter: r.WantsNewsletter,
	}
}

// ReservationListResponse represents one page of reservations.
type ReservationListResponse struct {
	Reservations []model.Reservation `json:"reservations"`
	Total        int64               `json:"total"`
	Page         int                 `json:"page"`
	PageSize     int                 `json:"page_size"`
}

// AvailabilityResponse lists free seats per slot.
type AvailabilityResponse struct {
	Date  string                     `json:"date"`
	Slots []service.SlotAvailability `json:"slots"`
}

// Create godoc
// @Summary Book a table
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body ReservationRequest true "Reservation data"
// @Success 201 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 429 {object} map[string]string
// @Failure 504 {object} errors.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	reservation, err := h.reservationService.Create(c.Request().Context(), req.input())
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, reservation)
}

// Availability godoc
// @Summary Free seats per time slot
// @Tags reservations
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /availability [get]
func (h *ReservationHandler) Availability(c echo.Context) error {
	date := c.QueryParam("date")
	slots, err := h.reservationService.Availability(c.Request().Context(), date)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, AvailabilityResponse{Date: date, Slots: slots})
}

// List godoc
// @Summary List reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param time_slot query string false "Time slot (HH:MM)"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} ReservationListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	filter := repository.ReservationFilter{
		Date:     c.QueryParam("date"),
		TimeSlot: c.QueryParam("time_slot"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 50),
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	reservations, total, err := h.reservationService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(err)
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}

	return c.JSON(http.StatusOK, ReservationListResponse{
		Reservations: reservations,
		Total:        total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	})
}

// Get godoc
// @Summary Get a reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}

	reservation, err := h.reservationService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}

// Update godoc
// @Summary Edit a reservation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body ReservationRequest true "Reservation data"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/reservations/{id} [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}

	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	reservation, err := h.reservationService.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reservation)
}

// Delete godoc
// @Summary Delete a reservation
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return err
	}

	if err := h.reservationService.Delete(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Newsletter godoc
// @Summary Newsletter subscribers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/newsletter [get]
func (h *ReservationHandler) Newsletter(c echo.Context) error {
	contacts, err := h.reservationService.NewsletterSubscribers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"contacts": contacts,
		"count":    len(contacts),
	})
}

func reservationID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid reservation ID",
			Code:  "INVALID_UUID",
		})
	}
	return id, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
