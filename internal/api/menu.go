package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cape/internal/menu"
)

// Menu handlers

func (s *Server) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": menu.Categories,
		"items":      menu.Items(),
	})
}

func (s *Server) GetMenuCategory(c *gin.Context) {
	category := c.Param("category")
	if !menu.IsKnownCategory(category) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Категория не найдена"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"items":    menu.ByCategory(category),
	})
}
