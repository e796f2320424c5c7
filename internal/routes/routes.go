package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pulse/internal/controllers"
	"pulse/internal/listeners"
	"pulse/internal/repositories"
	"pulse/internal/services"
	"pulse/pkg/config"
	"pulse/pkg/eventbus"
	"pulse/pkg/middleware"
	"pulse/pkg/service"
	"pulse/pkg/websocket"
)

// InitRouter wires repositories, services and controllers and mounts
// every route. Construction happens in one place so the dependency
// graph is visible at a glance.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	hub *websocket.Hub,
	bus *eventbus.Bus,
	cfg *config.Config,
	logger *zap.Logger,
) {
	apiGroup := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	userRepo := repositories.NewUserRepository(dbConn, logger)
	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	attendanceRepo := repositories.NewAttendanceRepository(dbConn, logger)
	assetRepo := repositories.NewAssetRepository(dbConn, logger)
	transferRepo := repositories.NewTransferRepository(dbConn, logger)
	terminationRepo := repositories.NewTerminationRepository(dbConn, logger)
	notificationRepo := repositories.NewNotificationRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, cacheRepo, logger)
	hierarchyService := services.NewHierarchyService(userRepo, cacheRepo, bus, cfg.Cache.OrgChartTTL, logger)
	departmentService := services.NewDepartmentService(departmentRepo, logger)
	attendanceService := services.NewAttendanceService(attendanceRepo, logger)
	assetService := services.NewAssetService(assetRepo, userRepo, bus, logger)
	transferService := services.NewTransferService(transferRepo, userRepo, departmentRepo, bus, logger)
	terminationService := services.NewTerminationService(terminationRepo, userRepo, cacheRepo, bus, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)

	notificationListener := listeners.NewNotificationListener(notificationRepo, hub, logger)
	notificationListener.Subscribe(bus)

	secureGroup := apiGroup.Group("", authMW.Auth)

	runAuthRouter(apiGroup, authService, logger)
	runUserRouter(secureGroup, userService, logger)
	runHierarchyRouter(secureGroup, hierarchyService, logger)
	runDepartmentRouter(secureGroup, departmentService, logger)
	runAttendanceRouter(secureGroup, attendanceService, logger)
	runAssetRouter(secureGroup, assetService, logger)
	runTransferRouter(secureGroup, transferService, logger)
	runTerminationRouter(secureGroup, terminationService, logger)
	runNotificationRouter(secureGroup, notificationService, logger)
	runReportRouter(secureGroup, departmentService, userService, logger)

	wsController := controllers.NewWebSocketController(hub, jwtSvc, logger)
	e.GET("/ws", wsController.ServeWs)

	logger.Info("routes mounted")
}
