package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crescendo/internal/models"
	"crescendo/internal/store"
)

// ListTables returns every table with its occupancy state.
func (s *Server) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Tables())
}

// AssignTable couples an order to a table. Occupied and dirty tables
// yield a conflict instead of being silently overwritten.
func (s *Server) AssignTable(c *gin.Context) {
	var req struct {
		OrderID string `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OrderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
		return
	}

	table, err := s.store.AssignOrderToTable(c.Param("id"), req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		case errors.Is(err, store.ErrTableNotAssignable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	s.refreshGauges()
	c.JSON(http.StatusOK, table)
}

// ReleaseTable clears the table's order and marks it dirty for cleaning.
func (s *Server) ReleaseTable(c *gin.Context) {
	table, err := s.store.ReleaseTable(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	s.refreshGauges()
	c.JSON(http.StatusOK, table)
}

// SetTableStatus overrides a table's status, used for manual cleaning and
// reservation check-in.
func (s *Server) SetTableStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch models.TableStatus(req.Status) {
	case models.TableStatusAvailable, models.TableStatusOccupied, models.TableStatusReserved, models.TableStatusDirty:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid table status: " + req.Status})
		return
	}

	table, err := s.store.SetTableStatus(c.Param("id"), models.TableStatus(req.Status))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	s.refreshGauges()
	c.JSON(http.StatusOK, table)
}
