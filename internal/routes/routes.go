package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gestion-medios/pkg/config"
	"gestion-medios/pkg/filestorage"
	appmiddleware "gestion-medios/pkg/middleware"
	"gestion-medios/pkg/service"
)

// InitRouter arma el grafo de dependencias y registra todas las rutas bajo /api.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	storage filestorage.FileStorageInterface,
	cfg *config.Config,
	logger *zap.Logger,
) {
	authMW := appmiddleware.NewAuthMiddleware(jwtSvc, logger)

	api := e.Group("/api")
	RunEquipmentRouter(api, dbConn, authMW, storage, cfg.Upload.MaxSizeMB, logger)
	RunStateRouter(api, dbConn, redisClient, authMW, logger)
}
