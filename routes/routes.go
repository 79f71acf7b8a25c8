// Package routes assembles the HTTP surface of the laundry API.
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/kendall-kelly/laundry-api/config"
	"github.com/kendall-kelly/laundry-api/controllers"
	"github.com/kendall-kelly/laundry-api/middleware"
	"github.com/kendall-kelly/laundry-api/schemas"
	"github.com/kendall-kelly/laundry-api/services"
	"gorm.io/gorm"
)

// Setup builds the router with every resource mounted under /api/v1
func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.IsTest() {
		gin.SetMode(gin.TestMode)
	}

	// Requests are checked by the same rules the client applies.
	binding.Validator = schemas.StructValidator{}

	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	health := controllers.NewHealthController(db)
	customers := controllers.NewCustomerController(services.NewCustomerService(db))
	packages := controllers.NewPackageController(services.NewPackageService(db))
	methods := controllers.NewPaymentMethodController(services.NewPaymentMethodService(db))
	perfumes := controllers.NewPerfumeController(services.NewPerfumeService(db))
	orders := controllers.NewOrderController(services.NewOrderService(db))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", health.Health)
		v1.GET("/database/status", health.DatabaseStatus)

		v1.GET("/customers", customers.List)
		v1.POST("/customers", customers.Create)
		v1.GET("/customers/:id", customers.Get)
		v1.PUT("/customers/:id", customers.Update)
		v1.DELETE("/customers/:id", customers.Delete)

		v1.GET("/packages", packages.List)
		v1.POST("/packages", packages.Create)
		v1.GET("/packages/:id", packages.Get)
		v1.PUT("/packages/:id", packages.Update)
		v1.DELETE("/packages/:id", packages.Delete)

		v1.GET("/payment-methods", methods.List)
		v1.POST("/payment-methods", methods.Create)
		v1.GET("/payment-methods/:id", methods.Get)
		v1.PUT("/payment-methods/:id", methods.Update)
		v1.DELETE("/payment-methods/:id", methods.Delete)

		v1.GET("/perfumes", perfumes.List)
		v1.POST("/perfumes", perfumes.Create)
		v1.GET("/perfumes/:id", perfumes.Get)
		v1.PUT("/perfumes/:id", perfumes.Update)
		v1.DELETE("/perfumes/:id", perfumes.Delete)

		v1.GET("/orders", orders.List)
		v1.POST("/orders", orders.Create)
		v1.GET("/orders/:id", orders.Get)
		v1.PUT("/orders/:id", orders.Update)
		v1.DELETE("/orders/:id", orders.Delete)
	}

	return router
}
