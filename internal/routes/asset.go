package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runAssetRouter(secureGroup *echo.Group, assetService *services.AssetService, logger *zap.Logger) {
	assetCtrl := controllers.NewAssetController(assetService, logger)

	secureGroup.GET("/assets", assetCtrl.GetAssets)
	secureGroup.GET("/asset/:id", assetCtrl.FindAsset)
	secureGroup.POST("/asset", assetCtrl.CreateAsset)
	secureGroup.PUT("/asset/:id", assetCtrl.UpdateAsset)
	secureGroup.POST("/asset/:id/assign", assetCtrl.AssignAsset)
	secureGroup.POST("/asset/:id/return", assetCtrl.ReturnAsset)
	secureGroup.DELETE("/asset/:id", assetCtrl.DeleteAsset)
}
