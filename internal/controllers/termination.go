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

type TerminationController struct {
	terminationService *services.TerminationService
	logger             *zap.Logger
}

func NewTerminationController(terminationService *services.TerminationService, logger *zap.Logger) *TerminationController {
	return &TerminationController{terminationService: terminationService, logger: logger}
}

func (c *TerminationController) GetTerminations(ctx echo.Context) error {
	filter := utils.ParseFilter(ctx.Request().URL.Query())
	terminations, total, err := c.terminationService.GetTerminations(ctx.Request().Context(), filter)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessList(ctx, "terminations fetched", terminations, total, filter.Page, filter.Limit)
}

func (c *TerminationController) CreateTermination(ctx echo.Context) error {
	var payload dto.CreateTerminationDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	res, err := c.terminationService.CreateTermination(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "termination applied", res)
}
