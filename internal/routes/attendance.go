package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/services"
)

func runAttendanceRouter(secureGroup *echo.Group, attendanceService *services.AttendanceService, logger *zap.Logger) {
	attendanceCtrl := controllers.NewAttendanceController(attendanceService, logger)

	secureGroup.GET("/attendance", attendanceCtrl.GetMyAttendance)
	secureGroup.POST("/attendance/clock-in", attendanceCtrl.ClockIn)
	secureGroup.POST("/attendance/clock-out", attendanceCtrl.ClockOut)
}
