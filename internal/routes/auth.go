package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runAuthRouter(apiGroup *echo.Group, authService *services.AuthService, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)

	apiGroup.POST("/login", authCtrl.Login)
	apiGroup.POST("/refresh", authCtrl.Refresh)
}
