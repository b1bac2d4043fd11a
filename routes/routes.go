package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pos/configs"
	"pos/controllers"
	"pos/middlewares"
	"pos/repository"
	"pos/services"
	"pos/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.EventHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	itemRepo := repository.NewMenuItemRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	depRepo := repository.NewDepartmentRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	configRepo := repository.NewConfigRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(itemRepo, catRepo, depRepo)
	sheetSvc := services.NewSheetService(catalogSvc)
	orderSvc := services.NewOrderService(orderRepo, tableRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	menuCtrl := controllers.NewMenuController(catalogSvc, hub)
	catCtrl := controllers.NewCategoryController(catalogSvc, hub)
	depCtrl := controllers.NewDepartmentController(catalogSvc, hub)
	sheetCtrl := controllers.NewSheetController(sheetSvc, hub)
	tableCtrl := controllers.NewTableController(tableRepo, hub)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	invoiceCtrl := controllers.NewInvoiceController(invoiceRepo)
	configCtrl := controllers.NewConfigController(configRepo, hub)
	authCtrl := controllers.NewAuthController(authSvc)

	api := r.Group("/api")

	// Auth
	api.POST("/login", authCtrl.Login)
	api.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Reads are open so a terminal can render before login; every
	// mutation requires a token.
	api.GET("/menu/items", menuCtrl.List)
	api.GET("/menu/stats", menuCtrl.Stats)
	api.GET("/menu/categories", catCtrl.List)
	api.GET("/menu/departments", depCtrl.List)
	api.GET("/menu/template", sheetCtrl.Template)
	api.GET("/menu/export", sheetCtrl.Export)
	api.GET("/tables", tableCtrl.List)
	api.GET("/orders", orderCtrl.List)
	api.GET("/orders/table/:id", orderCtrl.GetByTable)
	api.GET("/invoices", invoiceCtrl.List)
	api.GET("/config/kot", configCtrl.GetKot)
	api.GET("/config/bill", configCtrl.GetBill)

	auth := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.POST("/menu/items", menuCtrl.Create)
		auth.PUT("/menu/items/:id", menuCtrl.Update)
		auth.DELETE("/menu/items/:id", menuCtrl.Delete)

		auth.POST("/menu/categories", catCtrl.Create)
		auth.DELETE("/menu/categories/:id", catCtrl.Delete)

		auth.POST("/menu/departments", depCtrl.Create)
		auth.DELETE("/menu/departments/:id", depCtrl.Delete)

		auth.POST("/menu/import", sheetCtrl.Import)

		auth.POST("/tables", tableCtrl.Create)
		auth.PUT("/tables/:id", tableCtrl.Update)
		auth.DELETE("/tables/:id", tableCtrl.Delete)

		auth.POST("/orders/table/:id", orderCtrl.AddItems)
		auth.POST("/orders/table/:id/sent", orderCtrl.MarkSent)
		auth.POST("/orders/table/:id/complete", orderCtrl.Complete)

		auth.POST("/invoices", invoiceCtrl.Create)

		auth.PUT("/config/kot", configCtrl.UpdateKot)
		auth.PUT("/config/bill", configCtrl.UpdateBill)
	}

	// Change-event feed
	api.GET("/ws/events", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
