package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const serviceName = "microfin-ledger"

type Handler struct {
	version string
}

// NewHandler takes the build version stamped into the binary at link time.
func NewHandler(version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{version: version}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"service": serviceName,
		"version": h.version,
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
