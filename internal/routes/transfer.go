package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runTransferRouter(secureGroup *echo.Group, transferService *services.TransferService, logger *zap.Logger) {
	transferCtrl := controllers.NewTransferController(transferService, logger)

	secureGroup.GET("/transfers", transferCtrl.GetTransfers)
	secureGroup.POST("/transfer", transferCtrl.CreateTransfer)
}
