package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/services"
	"pulse/pkg/api"
	apperrors "pulse/pkg/errors"
)

type HierarchyController struct {
	hierarchyService *services.HierarchyService
	logger           *zap.Logger
}

func NewHierarchyController(hierarchyService *services.HierarchyService, logger *zap.Logger) *HierarchyController {
	return &HierarchyController{hierarchyService: hierarchyService, logger: logger}
}

// GetHierarchy renders the roster as a flat, ordered list of rows.
// ?expanded= carries the ids of the managers whose subtrees the
// frontend currently shows, comma separated.
func (c *HierarchyController) GetHierarchy(ctx echo.Context) error {
	query := services.HierarchyQuery{
		Search: ctx.QueryParam("search"),
		Role:   ctx.QueryParam("role"),
	}
	if raw := ctx.QueryParam("expanded"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				query.ExpandedIDs = append(query.ExpandedIDs, id)
			}
		}
	}

	rows, err := c.hierarchyService.GetHierarchy(ctx.Request().Context(), query)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "hierarchy fetched", rows)
}

func (c *HierarchyController) GetOrgChart(ctx echo.Context) error {
	nodes, err := c.hierarchyService.GetOrgChart(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne(ctx, http.StatusOK, "org chart fetched", nodes)
}

func (c *HierarchyController) Reparent(ctx echo.Context) error {
	var payload dto.ReparentDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err))
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	if err := c.hierarchyService.Reparent(ctx.Request().Context(), payload); err != nil {
		return api.ErrorResponse(ctx, err)
	}
	return api.SuccessOne[any](ctx, http.StatusOK, "manager changed", nil)
}
