package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetGarageProfile returns the workshop identity printed on bills.
// The profile reloads from garage.yml without a restart.
func (s *Server) GetGarageProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.profile.Get()})
}
