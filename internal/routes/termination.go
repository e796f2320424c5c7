package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/hierarchy"
	"pulse/internal/services"
	"pulse/pkg/middleware"
)

func runTerminationRouter(secureGroup *echo.Group, terminationService *services.TerminationService, logger *zap.Logger) {
	terminationCtrl := controllers.NewTerminationController(terminationService, logger)
	adminOnly := middleware.RequireRoles(string(hierarchy.RoleAdmin), string(hierarchy.RoleHR))

	secureGroup.GET("/terminations", terminationCtrl.GetTerminations)
	secureGroup.POST("/termination", terminationCtrl.CreateTermination, adminOnly)
}
