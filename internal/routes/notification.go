package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runNotificationRouter(secureGroup *echo.Group, notificationService *services.NotificationService, logger *zap.Logger) {
	notificationCtrl := controllers.NewNotificationController(notificationService, logger)

	secureGroup.GET("/notifications", notificationCtrl.GetNotifications)
	secureGroup.GET("/notifications/unread-count", notificationCtrl.CountUnread)
	secureGroup.POST("/notifications/mark-read", notificationCtrl.MarkRead)
}
