package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nocturna/internal/live"
	"nocturna/internal/model"
	"nocturna/internal/service"
)

// HeadCountHandler handles headcount endpoints.
type HeadCountHandler struct {
	headCountService service.HeadCountService
}

// NewHeadCountHandler creates a new headcount handler.
func NewHeadCountHandler(headCountService service.HeadCountService) *HeadCountHandler {
	return &HeadCountHandler{headCountService: headCountService}
}

// AdjustRequest carries the amount for increment and decrement. Omitted means 1.
type AdjustRequest struct {
	Amount int `json:"amount" validate:"omitempty,min=1,max=1000"`
}

// SetRequest carries an absolute headcount.
type SetRequest struct {
	Count *int `json:"count" validate:"required,min=0"`
}

// Public godoc
// @Summary Current number of people inside
// @Tags live
// @Produce json
// @Success 200 {object} live.CountMessage
// @Failure 500 {object} errors.ErrorResponse
// @Router /headcount [get]
func (h *HeadCountHandler) Public(c echo.Context) error {
	hc, err := h.headCountService.Current(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, live.CountEvent(hc).Data)
}

// Get godoc
// @Summary Tonight's headcount row
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HeadCount
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/headcount [get]
func (h *HeadCountHandler) Get(c echo.Context) error {
	hc, err := h.headCountService.Current(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hc)
}

// Increment godoc
// @Summary Add people to the headcount
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdjustRequest false "Amount"
// @Success 200 {object} model.HeadCount
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/headcount/increment [post]
func (h *HeadCountHandler) Increment(c echo.Context) error {
	amount, err := bindAmount(c)
	if err != nil {
		return err
	}
	return h.respond(c, func() (*model.HeadCount, error) {
		return h.headCountService.Increment(c.Request().Context(), amount)
	})
}

// Decrement godoc
// @Summary Remove people from the headcount
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdjustRequest false "Amount"
// @Success 200 {object} model.HeadCount
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/headcount/decrement [post]
func (h *HeadCountHandler) Decrement(c echo.Context) error {
	amount, err := bindAmount(c)
	if err != nil {
		return err
	}
	return h.respond(c, func() (*model.HeadCount, error) {
		return h.headCountService.Decrement(c.Request().Context(), amount)
	})
}

// Reset godoc
// @Summary Reset the headcount to zero
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.HeadCount
// @Router /admin/headcount/reset [post]
func (h *HeadCountHandler) Reset(c echo.Context) error {
	return h.respond(c, func() (*model.HeadCount, error) {
		return h.headCountService.Reset(c.Request().Context())
	})
}

// Set godoc
// @Summary Overwrite the headcount
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetRequest true "Count"
// @Success 200 {object} model.HeadCount
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/headcount [put]
func (h *HeadCountHandler) Set(c echo.Context) error {
	var req SetRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	return h.respond(c, func() (*model.HeadCount, error) {
		return h.headCountService.Set(c.Request().Context(), *req.Count)
	})
}

func (h *HeadCountHandler) respond(c echo.Context, fn func() (*model.HeadCount, error)) error {
	hc, err := fn()
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hc)
}

func bindAmount(c echo.Context) (int, error) {
	var req AdjustRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return 0, invalidBody()
		}
		if err := c.Validate(&req); err != nil {
			return 0, validationFailed(err)
		}
	}
	if req.Amount == 0 {
		req.Amount = 1
	}
	return req.Amount, nil
}
