package router

import (
	"github.com/morshedkoli/personal-finance/internal/config"
	"github.com/morshedkoli/personal-finance/internal/finance"
	"github.com/morshedkoli/personal-finance/internal/handler"
	"github.com/morshedkoli/personal-finance/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	financeSvc := finance.NewService(db)

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)
	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	incomeHandler := handler.NewIncomeHandler(db)
	protected.POST("/income", incomeHandler.Create)
	protected.GET("/income", incomeHandler.List)
	protected.GET("/income/:id", incomeHandler.Get)
	protected.PATCH("/income/:id", incomeHandler.Update)
	protected.DELETE("/income/:id", incomeHandler.Delete)

	expenseHandler := handler.NewExpenseHandler(db)
	protected.POST("/expenses", expenseHandler.Create)
	protected.GET("/expenses", expenseHandler.List)
	protected.GET("/expenses/:id", expenseHandler.Get)
	protected.PATCH("/expenses/:id", expenseHandler.Update)
	protected.DELETE("/expenses/:id", expenseHandler.Delete)

	payableHandler := handler.NewPayableHandler(db)
	protected.POST("/payables", payableHandler.Create)
	protected.GET("/payables", payableHandler.List)
	protected.GET("/payables/:id", payableHandler.Get)
	protected.PATCH("/payables/:id", payableHandler.Update)
	protected.DELETE("/payables/:id", payableHandler.Delete)

	receivableHandler := handler.NewReceivableHandler(db)
	protected.POST("/receivables", receivableHandler.Create)
	protected.GET("/receivables", receivableHandler.List)
	protected.GET("/receivables/:id", receivableHandler.Get)
	protected.PATCH("/receivables/:id", receivableHandler.Update)
	protected.DELETE("/receivables/:id", receivableHandler.Delete)

	projectHandler := handler.NewProjectHandler(db, financeSvc)
	protected.POST("/projects", projectHandler.Create)
	protected.GET("/projects", projectHandler.List)
	protected.GET("/projects/:id", projectHandler.Get)
	protected.PUT("/projects/:id", projectHandler.Update)
	protected.POST("/projects/:id/complete", projectHandler.Complete)
	protected.DELETE("/projects/:id", projectHandler.Delete)

	paymentHistoryHandler := handler.NewPaymentHistoryHandler(db)
	protected.GET("/payment-history", paymentHistoryHandler.List)

	categoryHandler := handler.NewCategoryHandler(db)
	protected.GET("/categories", categoryHandler.List)
	protected.POST("/categories", categoryHandler.Create)
	protected.DELETE("/categories/:id", categoryHandler.Delete)

	dashboardHandler := handler.NewDashboardHandler(financeSvc)
	protected.GET("/dashboard", dashboardHandler.Get)
	protected.GET("/history", dashboardHandler.History)

	exportHandler := handler.NewExportHandler(financeSvc)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.List)

	return r
}
