package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crescendo/internal/models"
)

// DashboardStats is the headline summary shown on the staff dashboard.
type DashboardStats struct {
	TotalRevenue   float64        `json:"totalRevenue"`
	TotalOrders    int            `json:"totalOrders"`
	ActiveOrders   int            `json:"activeOrders"`
	ServedOrders   int            `json:"servedOrders"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	OccupiedTables int            `json:"occupiedTables"`
	ActiveStaff    int            `json:"activeStaff"`
	StaffOnBreak   int            `json:"staffOnBreak"`
	LowStockItems  int            `json:"lowStockItems"`
}

// GetStats derives the dashboard summary from current state. Revenue
// counts only orders whose payment completed.
func (s *Server) GetStats(c *gin.Context) {
	stats := DashboardStats{OrdersByStatus: make(map[string]int)}

	for _, order := range s.store.Orders() {
		stats.TotalOrders++
		stats.OrdersByStatus[string(order.Status)]++
		if order.PaymentStatus == models.PaymentStatusCompleted {
			stats.TotalRevenue += order.TotalAmount
		}
		if order.IsActive() {
			stats.ActiveOrders++
		}
		if order.Status == models.OrderStatusServed {
			stats.ServedOrders++
		}
	}

	for _, table := range s.store.Tables() {
		if table.Status == models.TableStatusOccupied {
			stats.OccupiedTables++
		}
	}

	for _, member := range s.store.Staff() {
		switch member.Status {
		case models.StaffStatusActive:
			stats.ActiveStaff++
		case models.StaffStatusOnBreak:
			stats.StaffOnBreak++
		}
	}

	stats.LowStockItems = len(s.store.LowStockItems())

	c.JSON(http.StatusOK, stats)
}

// GetMonitorMetrics returns the in-process metric map.
func (s *Server) GetMonitorMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetMetrics())
}
