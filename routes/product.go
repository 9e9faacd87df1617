package routes

import (
	"bitbucket.org/mmdatafocus/profit_backend/controllers"
	"bitbucket.org/mmdatafocus/profit_backend/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoute(router *gin.Engine) {
	products := router.Group("/products")
	{
		products.GET("", controllers.GetProducts)
		products.GET("/stats", controllers.GetDashboardStats)
		products.GET("/export", controllers.ExportProducts)
		products.POST("", middlewares.RateLimiter(), controllers.CreateProduct)
		products.PUT("/:id", middlewares.RateLimiter(), controllers.UpdateProduct)
		products.DELETE("/:id", middlewares.RateLimiter(), controllers.DeleteProduct)

		// History: entries survive product deletion, so these do not
		// 404 for ids of deleted products.
		products.GET("/:id/history", controllers.GetProductHistory)
		products.PUT("/history/:historyId/note", middlewares.RateLimiter(), controllers.UpdateHistoryNote)
	}
}
