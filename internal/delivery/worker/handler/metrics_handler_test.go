package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"minaret/internal/domain/entity"
	mockSvc "minaret/internal/mocks/service"
	"minaret/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMetrics struct {
	metrics *usecase.NotificationMetrics
	err     error
	from    time.Time
	to      time.Time
}

func (s *stubMetrics) GetMetrics(_ context.Context, from, to time.Time) (*usecase.NotificationMetrics, error) {
	s.from = from
	s.to = to

	return s.metrics, s.err
}

func newMetricsHandler(t *testing.T, stub *stubMetrics, now time.Time) *MetricsHandler {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()

	return NewMetricsHandler(MetricsHandlerParams{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		MetricsSvc: stub,
		Clock:      clock,
	})
}

func TestMetricsHandler_GetMetrics_DefaultsToTrailingDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	stub := &stubMetrics{metrics: &usecase.NotificationMetrics{
		TotalSent:   4,
		TotalFailed: 1,
		SuccessRate: 80,
		SentByType:  map[entity.NotificationType]int64{entity.TypeMorningReminder: 4},
	}}
	h := newMetricsHandler(t, stub, now)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	err := h.GetMetrics(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, now.Add(-24*time.Hour), stub.from)
	assert.Equal(t, now, stub.to)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	metrics, ok := data["metrics"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 4, metrics["total_sent"])
	assert.EqualValues(t, 80, metrics["success_rate"])
}

func TestMetricsHandler_GetMetrics_ExplicitRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	stub := &stubMetrics{metrics: &usecase.NotificationMetrics{}}
	h := newMetricsHandler(t, stub, now)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/metrics?from=2026-03-01T00:00:00Z&to=2026-03-02T00:00:00Z", nil)
	rec := httptest.NewRecorder()

	err := h.GetMetrics(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), stub.from)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), stub.to)
}

func TestMetricsHandler_GetMetrics_RejectsBadRange(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	h := newMetricsHandler(t, &stubMetrics{metrics: &usecase.NotificationMetrics{}}, now)

	e := echo.New()

	for _, query := range []string{
		"?from=yesterday",
		"?to=tomorrow",
		"?from=2026-03-02T00:00:00Z&to=2026-03-01T00:00:00Z",
	} {
		req := httptest.NewRequest(http.MethodGet, "/metrics"+query, nil)
		rec := httptest.NewRecorder()

		err := h.GetMetrics(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %s", query)
	}
}
