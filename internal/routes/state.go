package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gestion-medios/internal/controllers"
	"gestion-medios/internal/repositories"
	"gestion-medios/internal/services"
	appmiddleware "gestion-medios/pkg/middleware"
)

func RunStateRouter(
	api *echo.Group,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	authMW *appmiddleware.AuthMiddleware,
	logger *zap.Logger,
) {
	var (
		stateRepository = repositories.NewStateRepository(dbConn)
		cacheRepository = repositories.NewRedisCacheRepository(redisClient)
		stateService    = services.NewStateService(stateRepository, cacheRepository, logger)
		stateCtrl       = controllers.NewStateController(stateService, logger)
	)

	g := api.Group("/states", authMW.Auth)
	g.GET("", stateCtrl.GetStates)
}
