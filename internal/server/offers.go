package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/servostack/garagedesk/internal/offers"
)

func (s *Server) BroadcastOffer(c *gin.Context) {
	var req offers.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.offerSvc.Broadcast(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isOfferValidationError(err error) bool {
	switch err {
	case offers.ErrInvalidSubject,
		offers.ErrInvalidBody:
		return true
	default:
		return false
	}
}
