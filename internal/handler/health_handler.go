package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"nocturna/internal/cache"
	"nocturna/internal/config"
	"nocturna/internal/db"
)

const maskedValue = "********"

// HealthHandler reports process and dependency status.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(gormDB *gorm.DB, cacheClient *cache.Client) *HealthHandler {
	return &HealthHandler{db: gormDB, cache: cacheClient}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	Timestamp time.Time `json:"timestamp"`
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "ok",
		Database:  "up",
		Cache:     "up",
		Timestamp: time.Now().UTC(),
	}
	status := http.StatusOK

	if err := db.Ping(ctx, h.db); err != nil {
		resp.Status = "error"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}
	// redis is optional; a dead cache only degrades the service
	if err := h.cache.Ping(ctx); err != nil {
		resp.Cache = "down"
		if status == http.StatusOK {
			resp.Status = "degraded"
		}
	}

	return c.JSON(status, resp)
}

// DebugEnv godoc
// @Summary Configuration dump
// @Description Lists known configuration keys with secrets masked. Only mounted when DEBUG_ENDPOINTS=true.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /debug/env [get]
func (h *HealthHandler) DebugEnv(c echo.Context) error {
	env := make(map[string]string, len(config.Keys()))
	for _, key := range config.Keys() {
		value, ok := os.LookupEnv(key)
		switch {
		case !ok:
			value = ""
		case config.IsSecret(key) && value != "":
			value = maskedValue
		}
		env[key] = value
	}
	return c.JSON(http.StatusOK, env)
}
