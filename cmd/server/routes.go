package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"healthplans.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	catalogHandler *handlers.CatalogHandler
	cartHandler    *handlers.CartHandler
	authRequired   gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// Account routes
		accounts := v1.Group("/accounts")
		{
			accounts.POST("/register", d.authHandler.Register)
			accounts.POST("/login", d.authHandler.Login)
			accounts.POST("/token/refresh", d.authHandler.Refresh)
			accounts.POST("/logout", d.authRequired, d.authHandler.Logout)
			accounts.GET("/profile", d.authRequired, d.profileHandler.Get)
			accounts.PATCH("/profile", d.authRequired, d.profileHandler.Update)
		}

		// Catalog routes (public read, protected write)
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/categories", d.catalogHandler.ListCategories)
			catalog.GET("/categories/:id", d.catalogHandler.GetCategory)
			catalog.GET("/categories/:id/plans", d.catalogHandler.ListPlansByCategory)
			catalog.POST("/categories", d.authRequired, d.catalogHandler.CreateCategory)
			catalog.GET("/plans", d.catalogHandler.ListPlans)
			catalog.GET("/plans/:id", d.catalogHandler.GetPlan)
			catalog.POST("/plans", d.authRequired, d.catalogHandler.CreatePlan)
		}

		// Cart routes (protected)
		cart := v1.Group("/cart")
		cart.Use(d.authRequired)
		{
			cart.GET("", d.cartHandler.Get)
			cart.DELETE("", d.cartHandler.Clear)
			cart.POST("/items", d.cartHandler.AddItem)
			cart.PUT("/items/:id", d.cartHandler.UpdateItem)
			cart.DELETE("/items/:id", d.cartHandler.RemoveItem)
		}
	}
}
