package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	adminAPI "github.com/ridloal/plant-catalog/internal/admin/api"
	adminService "github.com/ridloal/plant-catalog/internal/admin/service"
	"github.com/ridloal/plant-catalog/internal/plant/service"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

const (
	apiName    = "Plant Catalog API"
	apiVersion = "1.0.0"
)

// NewRouter wires the catalog HTTP API onto a fresh gin engine.
func NewRouter(ps service.PlantService, tokens adminService.TokenService) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Logger(), gin.CustomRecovery(recoverJSON))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": apiName,
			"version": apiVersion,
			"status":  "active",
		})
	})

	apiGroup := router.Group("/api")
	apiGroup.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})
	NewPlantHandler(ps, tokens).RegisterRoutes(apiGroup)
	adminAPI.NewAdminHandler(tokens).RegisterRoutes(apiGroup)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("Route %s not found", c.Request.URL.RequestURI()),
		})
	})
	return router
}

func recoverJSON(c *gin.Context, recovered interface{}) {
	err := fmt.Errorf("panic: %v", recovered)
	logger.Error("Recovered from panic", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Something went wrong!",
		"error":   err.Error(),
	})
}
