package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"nocturna/internal/auth"
	"nocturna/internal/errors"
	"nocturna/internal/service"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	Admin       interface{} `json:"admin,omitempty"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken: session.Token,
		ExpiresAt:   session.ExpiresAt,
		Admin:       session.Admin,
	})
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, ok := auth.ClaimsFromToken(c.Get("user"))
	if !ok {
		return respondError(errors.ErrSessionInvalid)
	}

	if err := h.authService.Logout(c.Request().Context(), claims.AdminID); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":  "logged out successfully",
		"redirect": errors.LoginRedirect,
	})
}

// Me godoc
// @Summary Current admin profile
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AdminUser
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := auth.ClaimsFromToken(c.Get("user"))
	if !ok {
		return respondError(errors.ErrSessionInvalid)
	}

	admin, err := h.authService.Me(c.Request().Context(), claims.AdminID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, admin)
}

// respondError turns a service error into the standard JSON error response.
func respondError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationFailed(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}
