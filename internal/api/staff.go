package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crescendo/internal/models"
)

// ListStaff returns the team roster.
func (s *Server) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Staff())
}

// UpdateStaffStatus sets a staff member's working state.
func (s *Server) UpdateStaffStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch models.StaffStatus(req.Status) {
	case models.StaffStatusActive, models.StaffStatusInactive, models.StaffStatusOnBreak:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid staff status: " + req.Status})
		return
	}

	member, err := s.store.UpdateStaffStatus(c.Param("id"), models.StaffStatus(req.Status))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}
