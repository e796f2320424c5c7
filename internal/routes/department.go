package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runDepartmentRouter(secureGroup *echo.Group, departmentService *services.DepartmentService, logger *zap.Logger) {
	departmentCtrl := controllers.NewDepartmentController(departmentService, logger)

	secureGroup.GET("/departments", departmentCtrl.GetDepartments)
	secureGroup.GET("/department/:id", departmentCtrl.FindDepartment)
	secureGroup.POST("/department", departmentCtrl.CreateDepartment)
	secureGroup.PUT("/department/:id", departmentCtrl.UpdateDepartment)
	secureGroup.DELETE("/department/:id", departmentCtrl.DeleteDepartment)
}
