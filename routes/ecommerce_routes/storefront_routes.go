package ecommerce_routes

import (
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/config"
	store_category "github.com/Anvogue-Ecommerce/anvogue-storefront-backend/controllers/ecommerce/category_controller"
	store_filter "github.com/Anvogue-Ecommerce/anvogue-storefront-backend/controllers/ecommerce/filter_controller"
	store_product "github.com/Anvogue-Ecommerce/anvogue-storefront-backend/controllers/ecommerce/product_controller"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")
	store.Use(middleware.RateLimiter(config.App.RateLimit.Requests, config.App.RateLimit.Window))

	// Product routes
	products := store.Group("/product")
	{
		products.GET("/all", store_product.GetAllProducts)
		products.GET("/category/:categoryId", store_product.GetProductsByCategory)
		products.GET("/detail/:id", store_product.GetProductByID)
		products.GET("/search", store_product.SearchProducts)
	}

	// Category routes
	store.GET("/category/all", store_category.GetCategories)

	// Filter routes
	filters := store.Group("/filters")
	{
		filters.GET("/facets", store_filter.GetFacets)
		filters.GET("/session/:sessionId", store_filter.GetSessionState)
		filters.POST("/session/:sessionId", store_filter.PushSessionState)
		filters.PATCH("/session/:sessionId/page", store_filter.SetSessionPage)
		filters.DELETE("/session/:sessionId", store_filter.ClearSessionState)
	}
}
