package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crescendo/internal/auth"
)

// Login checks the submitted credentials and returns the user with a
// session token. Bad credentials are recoverable: the client re-renders
// the form with the error message.
func (s *Server) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.monitor.IncrementMetric("logins")
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
