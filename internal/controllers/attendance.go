package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/services"
	"pulse/pkg/api"
	apperrors "pulse/pkg/errors"
	"pulse/pkg/utils"
)

type AttendanceController struct {
	attendanceService *services.AttendanceService
	logger            *zap.Logger
}

func NewAttendanceController(attendanceService *services.AttendanceService, logger *zap.Logger) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService, logger: logger}
}

// GetMyAttendance lists the caller's own attendance entries.
func (c *AttendanceController) GetMyAttendance(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	filter := utils.ParseFilter(ctx.Request().URL.Query())
	entries, total, err := c.attendanceService.GetByUser(ctx.Request().Context(), userID, filter)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "attendance fetched", entries, total, filter.Page, filter.Limit)
}

func (c *AttendanceController) ClockIn(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	var payload dto.ClockInDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	res, err := c.attendanceService.ClockIn(ctx.Request().Context(), userID, payload)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "clocked in", res)
}

func (c *AttendanceController) ClockOut(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	res, err := c.attendanceService.ClockOut(ctx.Request().Context(), userID)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "clocked out", res)
}
