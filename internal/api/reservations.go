package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crescendo/internal/models"
)

// ListReservations returns all reservations.
func (s *Server) ListReservations(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Reservations())
}

// CreateReservation books a table reservation.
func (s *Server) CreateReservation(c *gin.Context) {
	var res models.Reservation
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if res.ID == "" {
		res.ID = fmt.Sprintf("R%d", time.Now().UnixNano())
	}
	if err := s.store.AddReservation(res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateReservationStatus sets a reservation's state.
func (s *Server) UpdateReservationStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch models.ReservationStatus(req.Status) {
	case models.ReservationStatusConfirmed, models.ReservationStatusCancelled, models.ReservationStatusCompleted:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation status: " + req.Status})
		return
	}

	res, err := s.store.UpdateReservationStatus(c.Param("id"), models.ReservationStatus(req.Status))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}
