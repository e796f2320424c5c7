package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runReportRouter(secureGroup *echo.Group, departmentService *services.DepartmentService, userService *services.UserService, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(departmentService, userService, logger)

	secureGroup.GET("/reports/headcount", reportCtrl.GetHeadcountReport)
	secureGroup.GET("/reports/headcount.xlsx", reportCtrl.GetHeadcountReport)
}
