package router

import (
	"kampala_finance_backend/internal/handlers"
	"kampala_finance_backend/internal/middleware"
	"kampala_finance_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupTransactionRoutes sets up the transaction routes.
func SetupTransactionRoutes(authenticatedGroup *gin.RouterGroup, transactionHandler *handlers.TransactionHandler) {
	transactionRoutes := authenticatedGroup.Group("/transactions")
	transactionRoutes.Use(middleware.RequirePermission(models.PermDashboard, models.PermDailyOps))
	{
		transactionRoutes.GET("", transactionHandler.GetTransactions)
		transactionRoutes.POST("", transactionHandler.CreateTransaction)
	}
}

// SetupDebtorRoutes sets up the debtor routes.
func SetupDebtorRoutes(authenticatedGroup *gin.RouterGroup, debtorHandler *handlers.DebtorHandler) {
	debtorRoutes := authenticatedGroup.Group("/debtors")
	debtorRoutes.Use(middleware.RequirePermission(models.PermFinancials, models.PermDailyOps))
	{
		debtorRoutes.GET("", debtorHandler.GetDebtors)
		debtorRoutes.POST("", debtorHandler.CreateDebtor)
		debtorRoutes.PATCH("/:id", debtorHandler.UpdateDebtor)
		debtorRoutes.POST("/:id/payments", debtorHandler.RecordPayment)
	}
}

// SetupInventoryRoutes sets up the inventory routes.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := authenticatedGroup.Group("/inventory")
	inventoryRoutes.Use(middleware.RequirePermission(models.PermInventory))
	{
		inventoryRoutes.GET("", inventoryHandler.GetInventory)
		inventoryRoutes.GET("/low-stock", inventoryHandler.GetLowStockItems)
		inventoryRoutes.PATCH("/:id", inventoryHandler.UpdateInventoryItem)
	}
}

// SetupSettingsRoutes sets up settings, financials and user profile routes.
// Users may always read and edit their own profile.
func SetupSettingsRoutes(authenticatedGroup *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settingsRoutes := authenticatedGroup.Group("/settings")
	settingsRoutes.Use(middleware.RequirePermission(models.PermSettings))
	{
		settingsRoutes.GET("", settingsHandler.GetSettings)
		settingsRoutes.PATCH("", settingsHandler.UpdateSettings)
	}

	authenticatedGroup.GET("/financials", middleware.RequirePermission(models.PermFinancials), settingsHandler.GetFinancials)

	userRoutes := authenticatedGroup.Group("/users/:username")
	userRoutes.Use(middleware.RequireSelfOrPermission("username", models.PermSettings))
	{
		userRoutes.GET("", settingsHandler.GetUser)
		userRoutes.PATCH("", settingsHandler.UpdateUser)
	}
}

// SetupDataRoutes sets up export, backup, import and restore.
// Replacing the document is reserved for owners.
func SetupDataRoutes(authenticatedGroup *gin.RouterGroup, backupHandler *handlers.BackupHandler) {
	dataRoutes := authenticatedGroup.Group("/data")
	dataRoutes.Use(middleware.RequirePermission(models.PermSettings))
	{
		dataRoutes.GET("/export", backupHandler.ExportData)
		dataRoutes.GET("/backup", backupHandler.DownloadBackup)
	}

	ownerRoutes := authenticatedGroup.Group("/data")
	ownerRoutes.Use(middleware.RoleAuthMiddleware(models.RoleOwner))
	{
		ownerRoutes.POST("/import", backupHandler.ImportData)
		ownerRoutes.POST("/restore", backupHandler.RestoreBackup)
	}
}

// SetupReportRoutes sets up the daily report and dashboard routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	authenticatedGroup.GET("/reports/daily", middleware.RequirePermission(models.PermReports, models.PermDashboard), reportHandler.DownloadDailyReport)
	authenticatedGroup.GET("/dashboard/summary", middleware.RequirePermission(models.PermDashboard, models.PermReports), reportHandler.GetDashboardSummary)
}
