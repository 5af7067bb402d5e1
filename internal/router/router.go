// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alnajjar/makhzan/internal/config"
	"github.com/alnajjar/makhzan/internal/handlers"
	"github.com/alnajjar/makhzan/internal/middleware"
	"github.com/alnajjar/makhzan/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(services.NewStaticCredentials(cfg.Admin))
	inventoryService := services.NewInventoryService(db)
	salesService := services.NewSalesService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, cfg.Inventory.DefaultType)
	salesHandler := handlers.NewSalesHandler(salesService, inventoryService)

	// Initialize Gin router
	r := gin.New()

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
	})

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(sessions.Sessions(cfg.Session.CookieName, store))
	r.Use(middleware.Locale(cfg.I18n.DefaultLocale))
	r.Use(middleware.GeneralRateLimit())

	r.LoadHTMLGlob(cfg.Server.TemplatesGlob)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Authentication routes
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.LoginRequired())
	{
		protected.GET("/", inventoryHandler.Index)
		protected.GET("/add", inventoryHandler.ShowAdd)
		protected.POST("/add", inventoryHandler.Add)
		protected.GET("/delete/:id", inventoryHandler.Delete)

		protected.GET("/sell/:id", salesHandler.ShowSell)
		protected.POST("/sell/:id", salesHandler.Sell)
		protected.GET("/invoice/:id", salesHandler.Invoice)
		protected.GET("/sales", salesHandler.ListSales)
		protected.GET("/return/:id", salesHandler.Return)
	}

	return r
}
