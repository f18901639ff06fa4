// Package handler contains the worker's operational HTTP handlers.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"minaret/internal/delivery/worker/response"
	"minaret/internal/domain/service"
	"minaret/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// defaultMetricsWindow is the lookback used when the caller gives no range.
const defaultMetricsWindow = 24 * time.Hour

// MetricsHandler serves the audit log rollup for the operational surface.
type MetricsHandler struct {
	logger     *slog.Logger
	metricsSvc usecase.MetricsUsecase
	clock      service.Clock
}

// MetricsHandlerParams holds dependencies for the MetricsHandler
type MetricsHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	MetricsSvc usecase.MetricsUsecase
	Clock      service.Clock
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(params MetricsHandlerParams) *MetricsHandler {
	return &MetricsHandler{
		logger:     params.Logger,
		metricsSvc: params.MetricsSvc,
		clock:      params.Clock,
	}
}

// GetMetrics handles GET /metrics. Accepts optional RFC3339 'from' and 'to'
// query parameters; defaults to the trailing 24 hours.
func (h *MetricsHandler) GetMetrics(c echo.Context) error {
	ctx := c.Request().Context()

	now := h.clock.Now()
	from := now.Add(-defaultMetricsWindow)
	to := now

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "'from' must be RFC3339")
		}
		from = parsed
	}

	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "'to' must be RFC3339")
		}
		to = parsed
	}

	if !from.Before(to) {
		return response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "'from' must be before 'to'")
	}

	metrics, err := h.metricsSvc.GetMetrics(ctx, from, to)
	if err != nil {
		h.logger.Error("Failed to compute notification metrics", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "METRICS_FAILED", "failed to compute metrics")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"from":    from.UTC().Format(time.RFC3339),
		"to":      to.UTC().Format(time.RFC3339),
		"metrics": metrics,
	})
}
