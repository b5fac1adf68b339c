// Package server provides HTTP handlers and server setup for the backend.
package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gostarter/internal/version"
)

// Handler holds the HTTP handlers
type Handler struct{}

// NewHandler creates a new handler
func NewHandler() *Handler {
	return &Handler{}
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// Version handles GET /version
func (h *Handler) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
