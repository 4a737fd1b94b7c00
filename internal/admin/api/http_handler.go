package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/plant-catalog/internal/admin/domain"
	"github.com/ridloal/plant-catalog/internal/admin/service"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

type AdminHandler struct {
	tokens service.TokenService
}

func NewAdminHandler(tokens service.TokenService) *AdminHandler {
	return &AdminHandler{tokens: tokens}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	adminRoutes := router.Group("/admin")
	{
		adminRoutes.POST("/session", h.OpenSession)
	}
}

func (h *AdminHandler) OpenSession(c *gin.Context) {
	var req domain.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "adminKey is required",
			"error":   err.Error(),
		})
		return
	}

	session, err := h.tokens.OpenSession(req.AdminKey)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAdminKey) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid admin key"})
			return
		}
		logger.Error("OpenSession: token service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to open admin session",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": session})
}
