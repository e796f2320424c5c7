package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"pulse/internal/dto"
	"pulse/internal/services"
	"pulse/pkg/api"
	"pulse/pkg/types"
)

type ReportController struct {
	departmentService *services.DepartmentService
	userService       *services.UserService
	logger            *zap.Logger
}

func NewReportController(departmentService *services.DepartmentService, userService *services.UserService, logger *zap.Logger) *ReportController {
	return &ReportController{
		departmentService: departmentService,
		userService:       userService,
		logger:            logger,
	}
}

var headcountHeaders = []string{"Department", "Head", "Headcount", "Active"}

// GetHeadcountReport exports one row per department plus a roster
// sheet. ?format=json returns the same data without the spreadsheet.
func (c *ReportController) GetHeadcountReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	// export wants everything, not a page
	filter := types.Filter{Limit: 100000, Offset: 0, Page: 1}
	departments, total, err := c.departmentService.GetDepartments(reqCtx, filter)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	if ctx.QueryParam("format") == "json" {
		return api.SuccessList(ctx, "headcount report", departments, total, 1, len(departments))
	}

	users, _, err := c.userService.GetUsers(reqCtx, filter)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}

	return c.respondWithXLSX(ctx, departments, users)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, departments []dto.DepartmentDTO, users []dto.UserDTO) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			c.logger.Warn("failed to close report file", zap.Error(err))
		}
	}()

	sheet := "Headcount"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return api.ErrorResponse(ctx, err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})

	for i, h := range headcountHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	heads := make(map[string]string, len(users))
	for _, u := range users {
		heads[u.ID] = u.FullName
	}

	for i, d := range departments {
		head := ""
		if d.HeadID != nil {
			head = heads[*d.HeadID]
		}
		row := []interface{}{d.Name, head, d.Headcount, d.IsActive}
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	rosterSheet := "Roster"
	if _, err := f.NewSheet(rosterSheet); err == nil {
		rosterHeaders := []string{"Name", "Email", "Role", "Title", "Department", "Manager"}
		for i, h := range rosterHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(rosterSheet, cell, h)
			_ = f.SetCellStyle(rosterSheet, cell, cell, headerStyle)
		}
		for i, u := range users {
			title, dept, manager := "", "", ""
			if u.Title != nil {
				title = *u.Title
			}
			if u.DepartmentName != nil {
				dept = *u.DepartmentName
			}
			if u.ReportsTo != nil {
				manager = heads[*u.ReportsTo]
			}
			row := []interface{}{u.FullName, u.Email, u.RoleLabel, title, dept, manager}
			for j, v := range row {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
				_ = f.SetCellValue(rosterSheet, cell, v)
			}
		}
	}

	filename := fmt.Sprintf("headcount_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	if err := f.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("failed to stream report", zap.Error(err))
		return err
	}
	return nil
}
