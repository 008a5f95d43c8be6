package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gestion-medios/internal/routes"
	"gestion-medios/pkg/config"
	"gestion-medios/pkg/customvalidator"
	"gestion-medios/pkg/database/postgresql"
	"gestion-medios/pkg/filestorage"
	"gestion-medios/pkg/logger"
	"gestion-medios/pkg/service"
	"gestion-medios/pkg/utils"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		log.Fatal("No se pudieron aplicar las migraciones", zap.Error(err))
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	storage, err := filestorage.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		log.Fatal("No se pudo inicializar el almacenamiento de archivos", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		log.Fatal("No se pudieron registrar las validaciones personalizadas", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, storage, cfg, log)

	log.Info("Servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("El servidor se detuvo", zap.Error(err))
	}
}
