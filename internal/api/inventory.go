package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListInventory returns all inventory items.
func (s *Server) ListInventory(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Inventory())
}

// ListLowStock returns items at or below their reorder level.
func (s *Server) ListLowStock(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.LowStockItems())
}

// SetInventoryQuantity overwrites an item's stock level.
func (s *Server) SetInventoryQuantity(c *gin.Context) {
	var req struct {
		Quantity *float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a non-negative number"})
		return
	}

	item, err := s.store.SetInventoryQuantity(c.Param("id"), *req.Quantity)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}

	s.refreshGauges()
	c.JSON(http.StatusOK, item)
}

// RestockInventory adds stock to an item and stamps the restock time.
func (s *Server) RestockInventory(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := s.store.RestockInventoryItem(c.Param("id"), req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.refreshGauges()
	c.JSON(http.StatusOK, item)
}
