package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/hierarchy"
	"pulse/internal/services"
	"pulse/pkg/middleware"
)

func runUserRouter(secureGroup *echo.Group, userService *services.UserService, logger *zap.Logger) {
	userCtrl := controllers.NewUserController(userService, logger)
	adminOnly := middleware.RequireRoles(string(hierarchy.RoleAdmin), string(hierarchy.RoleHR))

	secureGroup.GET("/users", userCtrl.GetUsers)
	secureGroup.GET("/users/me", userCtrl.GetProfile)
	secureGroup.GET("/user/:id", userCtrl.FindUser)
	secureGroup.POST("/user", userCtrl.CreateUser, adminOnly)
	secureGroup.PUT("/user/:id", userCtrl.UpdateUser, adminOnly)
	secureGroup.DELETE("/user/:id", userCtrl.DeleteUser, adminOnly)
}
