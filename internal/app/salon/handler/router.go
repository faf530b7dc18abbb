package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"atakuafor/pkg/logger"
	"atakuafor/pkg/metrics"
)

// SetupRoutes wires all application routes. Catalog and review reads
// plus the contact and review forms are public; everything else sits
// behind the admin middleware.
func SetupRoutes(
	catalogHandler *CatalogHandler,
	contactHandler *ContactHandler,
	reviewHandler *ReviewHandler,
	authHandler *AuthHandler,
	authMiddleware *AuthMiddleware,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware("salon-api"))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "salon-api",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := authMiddleware.Authenticate()

	api := router.Group("/api")
	{
		services := api.Group("/services")
		{
			services.GET("", catalogHandler.GetAllServices)
			services.GET("/:id", catalogHandler.GetService)
			services.POST("", protected, catalogHandler.CreateService)
			services.PUT("/:id", protected, catalogHandler.UpdateService)
			services.DELETE("/:id", protected, catalogHandler.DeleteService)
		}

		products := api.Group("/products")
		{
			products.GET("", catalogHandler.GetAllProducts)
			products.GET("/:id", catalogHandler.GetProduct)
			products.POST("", protected, catalogHandler.CreateProduct)
			products.PUT("/:id", protected, catalogHandler.UpdateProduct)
			products.DELETE("/:id", protected, catalogHandler.DeleteProduct)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetAllReviews)
			reviews.GET("/:id", reviewHandler.GetReview)
			reviews.POST("", reviewHandler.CreateReview)
			reviews.DELETE("/:id", protected, reviewHandler.DeleteReview)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", contactHandler.CreateMessage)
			contact.GET("", protected, contactHandler.GetAllMessages)
			contact.GET("/:id", protected, contactHandler.GetMessage)
			contact.DELETE("/:id", protected, contactHandler.DeleteMessage)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)
			admin.POST("/refresh", authHandler.Refresh)
			admin.POST("/logout", protected, authHandler.Logout)
			admin.GET("/me", protected, authHandler.Me)
		}
	}

	return router
}
