// Package api exposes the restaurant dashboard over HTTP: staff order
// entry, table and inventory management, the customer checkout flow and a
// WebSocket feed for order tracking.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crescendo/internal/auth"
	"crescendo/internal/checkout"
	"crescendo/internal/live"
	"crescendo/internal/models"
	"crescendo/internal/monitoring"
	"crescendo/internal/store"
)

// Server handles the dashboard API
type Server struct {
	router     *gin.Engine
	store      *store.Store
	auth       *auth.Service
	checkout   *checkout.Service
	monitor    *monitoring.Monitor
	collectors *monitoring.Collectors
	hub        *live.Hub
}

// NewServer creates a new API server instance
func NewServer(st *store.Store, authSvc *auth.Service, checkoutSvc *checkout.Service, monitor *monitoring.Monitor, collectors *monitoring.Collectors) *Server {
	server := &Server{
		router:     gin.Default(),
		store:      st,
		auth:       authSvc,
		checkout:   checkoutSvc,
		monitor:    monitor,
		collectors: collectors,
		hub:        live.NewHub(),
	}

	server.setupRoutes()
	return server
}

// Router returns the Gin router
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Hub returns the WebSocket hub for the tracking feed.
func (s *Server) Hub() *live.Hub {
	return s.hub
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Crescendo API is running"})
	})

	s.router.GET("/ws", func(c *gin.Context) {
		s.hub.ServeWS(c.Writer, c.Request)
	})

	v1 := s.router.Group("/api/v1")
	{
		// Authentication
		v1.POST("/auth/login", s.Login)

		// Order management
		v1.GET("/orders", s.ListOrders)
		v1.POST("/orders", s.CreateOrder)
		v1.GET("/orders/:id", s.GetOrder)
		v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
		v1.DELETE("/orders/:id", s.CancelOrder)
		v1.GET("/orders/:id/eta", s.GetOrderETA)
		v1.GET("/orders/:id/qrcode", s.GetOrderQRCode)

		// Table management
		v1.GET("/tables", s.ListTables)
		v1.POST("/tables/:id/assign", s.AssignTable)
		v1.POST("/tables/:id/release", s.ReleaseTable)
		v1.PUT("/tables/:id/status", s.SetTableStatus)

		// Menu
		v1.GET("/menu", s.ListMenu)
		v1.PUT("/menu/:id/availability", s.SetMenuAvailability)

		// Staff management
		v1.GET("/staff", s.ListStaff)
		v1.PUT("/staff/:id/status", s.UpdateStaffStatus)

		// Inventory
		v1.GET("/inventory", s.ListInventory)
		v1.GET("/inventory/low-stock", s.ListLowStock)
		v1.PUT("/inventory/:id/quantity", s.SetInventoryQuantity)
		v1.POST("/inventory/:id/restock", s.RestockInventory)

		// Reservations
		v1.GET("/reservations", s.ListReservations)
		v1.POST("/reservations", s.CreateReservation)
		v1.PUT("/reservations/:id/status", s.UpdateReservationStatus)

		// Customer checkout
		v1.POST("/checkout", s.Checkout)

		// Dashboard
		v1.GET("/stats", s.GetStats)
		v1.GET("/monitor/metrics", s.GetMonitorMetrics)
	}
}

// refreshGauges recomputes the state gauges after a mutation.
func (s *Server) refreshGauges() {
	statuses := map[string]int{}
	for _, order := range s.store.Orders() {
		statuses[string(order.Status)]++
	}
	for _, status := range []string{"pending", "confirmed", "preparing", "ready", "served", "cancelled"} {
		s.collectors.OrderStatus.WithLabelValues(status).Set(float64(statuses[status]))
	}

	occupied := 0
	for _, table := range s.store.Tables() {
		if table.Status == models.TableStatusOccupied {
			occupied++
		}
	}
	s.collectors.OccupiedTables.Set(float64(occupied))
	s.collectors.LowStockItems.Set(float64(len(s.store.LowStockItems())))
}
