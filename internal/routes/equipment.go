package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gestion-medios/internal/authz"
	"gestion-medios/internal/controllers"
	"gestion-medios/internal/repositories"
	"gestion-medios/internal/services"
	"gestion-medios/pkg/filestorage"
	appmiddleware "gestion-medios/pkg/middleware"
)

func RunEquipmentRouter(
	api *echo.Group,
	dbConn *pgxpool.Pool,
	authMW *appmiddleware.AuthMiddleware,
	storage filestorage.FileStorageInterface,
	uploadMaxSizeMB int64,
	logger *zap.Logger,
) {
	var (
		equipmentRepository = repositories.NewEquipmentRepository(dbConn)
		equipmentService    = services.NewEquipmentService(equipmentRepository, logger)
		importService       = services.NewEquipmentImportService(equipmentRepository, logger)
		equipmentCtrl       = controllers.NewEquipmentController(equipmentService, logger)
		importCtrl          = controllers.NewEquipmentImportController(importService, storage, uploadMaxSizeMB, logger)
	)

	writeRoles := authMW.RequireRoles(authz.RoleAdmin, authz.RoleManager)
	adminOnly := authMW.RequireRoles(authz.RoleAdmin)

	g := api.Group("/equipment", authMW.Auth)
	g.GET("", equipmentCtrl.GetEquipments)
	g.GET("/export", equipmentCtrl.ExportEquipments)
	g.GET("/template", equipmentCtrl.DownloadTemplate)
	g.POST("/upload-excel", importCtrl.UploadExcel, writeRoles)
	g.POST("/validate-import", importCtrl.ValidateImport, writeRoles)
	g.POST("/import", importCtrl.ImportEquipments, writeRoles)
	g.GET("/:id", equipmentCtrl.FindEquipment)
	g.POST("", equipmentCtrl.CreateEquipment, writeRoles)
	g.PUT("/:id", equipmentCtrl.UpdateEquipment, writeRoles)
	g.DELETE("/:id", equipmentCtrl.DeleteEquipment, adminOnly)
}
