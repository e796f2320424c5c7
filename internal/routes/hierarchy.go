package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runHierarchyRouter(secureGroup *echo.Group, hierarchyService *services.HierarchyService, logger *zap.Logger) {
	hierarchyCtrl := controllers.NewHierarchyController(hierarchyService, logger)

	secureGroup.GET("/users/hierarchy", hierarchyCtrl.GetHierarchy)
	secureGroup.GET("/org-chart", hierarchyCtrl.GetOrgChart)
	secureGroup.PATCH("/org-chart/reparent", hierarchyCtrl.Reparent)
}
