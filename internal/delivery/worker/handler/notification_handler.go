package handler

import (
	"log/slog"
	"net/http"
	"time"

	"minaret/internal/delivery/worker/response"
	"minaret/internal/domain/entity"
	"minaret/internal/domain/service"
	"minaret/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandler serves the debug enqueue and manual dispatch endpoints.
// These exist for operators and end-to-end checks; the production enqueue
// paths call the scheduler usecase directly.
type NotificationHandler struct {
	logger       *slog.Logger
	schedulerSvc usecase.SchedulerUsecase
	dispatchSvc  usecase.DispatchUsecase
	clock        service.Clock
}

// NotificationHandlerParams holds dependencies for the NotificationHandler
type NotificationHandlerParams struct {
	fx.In

	Logger       *slog.Logger
	SchedulerSvc usecase.SchedulerUsecase
	DispatchSvc  usecase.DispatchUsecase
	Clock        service.Clock
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		logger:       params.Logger,
		schedulerSvc: params.SchedulerSvc,
		dispatchSvc:  params.DispatchSvc,
		clock:        params.Clock,
	}
}

// enqueueRequest is the debug enqueue payload.
type enqueueRequest struct {
	UserID    *string           `json:"user_id" validate:"omitempty,uuid"`
	Type      string            `json:"type" validate:"required"`
	ExecuteAt *time.Time        `json:"execute_at"`
	Data      map[string]string `json:"data"`
	UniqueKey *string           `json:"unique_key"`
}

// Enqueue handles POST /debug/notifications, scheduling a notification for
// delivery. ExecuteAt defaults to now, making the record due immediately.
func (h *NotificationHandler) Enqueue(c echo.Context) error {
	ctx := c.Request().Context()

	var req enqueueRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_BODY", "failed to parse request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
	}

	input := usecase.ScheduleInput{
		Type:      entity.NotificationType(req.Type),
		ExecuteAt: h.clock.Now(),
		Data:      req.Data,
		UniqueKey: req.UniqueKey,
	}

	if req.UserID != nil {
		userID, err := uuid.Parse(*req.UserID)
		if err != nil {
			return response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "user_id must be a UUID")
		}
		input.UserID = &userID
	}

	if req.ExecuteAt != nil {
		input.ExecuteAt = req.ExecuteAt.UTC()
	}

	id, err := h.schedulerSvc.Schedule(ctx, input)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownNotificationType) {
			return response.Error(c, http.StatusBadRequest, "UNKNOWN_TYPE", err.Error())
		}

		h.logger.Error("Failed to schedule debug notification", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "SCHEDULE_FAILED", "failed to schedule notification")
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id": id.String(),
	})
}

// RunCycle handles POST /debug/dispatch, running one dispatch cycle on demand
// instead of waiting for the ticker.
func (h *NotificationHandler) RunCycle(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.dispatchSvc.RunDispatchCycle(ctx)
	if err != nil {
		h.logger.Error("On-demand dispatch cycle failed", slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "DISPATCH_FAILED", "dispatch cycle failed")
	}

	return response.Success(c, http.StatusOK, stats)
}
