package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	adminAPI "github.com/ridloal/plant-catalog/internal/admin/api"
	adminDomain "github.com/ridloal/plant-catalog/internal/admin/domain"
	adminService "github.com/ridloal/plant-catalog/internal/admin/service"
	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/ridloal/plant-catalog/internal/plant/service"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

type PlantHandler struct {
	plantService service.PlantService
	tokens       adminService.TokenService
}

func NewPlantHandler(ps service.PlantService, tokens adminService.TokenService) *PlantHandler {
	return &PlantHandler{plantService: ps, tokens: tokens}
}

func (h *PlantHandler) RegisterRoutes(router *gin.RouterGroup) {
	plantRoutes := router.Group("/plants")
	{
		plantRoutes.GET("", h.ListPlants)
		plantRoutes.GET("/", h.ListPlants)
		plantRoutes.GET("/categories", h.ListCategories)
		plantRoutes.GET("/:id", h.GetPlant)

		createGuard := adminAPI.RequireScope(h.tokens, adminDomain.ScopeCreatePlants)
		plantRoutes.POST("", createGuard, h.CreatePlant)
		plantRoutes.POST("/", createGuard, h.CreatePlant)
	}
}

func (h *PlantHandler) ListPlants(c *gin.Context) {
	plants, err := h.plantService.SearchPlants(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		logger.Error("ListPlants: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching plants",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(plants),
		"data":    plants,
	})
}

func (h *PlantHandler) ListCategories(c *gin.Context) {
	categories, err := h.plantService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("ListCategories: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching categories",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

func (h *PlantHandler) GetPlant(c *gin.Context) {
	plant, err := h.plantService.GetPlant(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlantID):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid plant ID"})
		case errors.Is(err, service.ErrPlantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Plant not found"})
		default:
			logger.Error("GetPlant: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error fetching plant",
				"error":   err.Error(),
			})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": plant})
}

func (h *PlantHandler) CreatePlant(c *gin.Context) {
	var req domain.CreatePlantRequest
	// An empty body decodes as {} so the missing fields are reported one by one.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	plant, err := h.plantService.CreatePlant(c.Request.Context(), req)
	if err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  verr.Errors,
			})
			return
		}
		if errors.Is(err, service.ErrDuplicatePlantName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "A plant with this name already exists",
				"error":   "Duplicate plant name",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating plant",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Plant created successfully",
		"data":    plant,
	})
}
