package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListMenu returns the menu, optionally filtered by category.
func (s *Server) ListMenu(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, s.store.MenuByCategory(category))
		return
	}
	c.JSON(http.StatusOK, s.store.MenuItems())
}

// SetMenuAvailability toggles whether a dish can be ordered.
func (s *Server) SetMenuAvailability(c *gin.Context) {
	var req struct {
		Available *bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Available == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "available is required"})
		return
	}

	item, err := s.store.SetMenuItemAvailability(c.Param("id"), *req.Available)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}
