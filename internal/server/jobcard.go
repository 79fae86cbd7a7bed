package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jobcarddomain "github.com/servostack/garagedesk/internal/jobcard/domain"
)

func (s *Server) CreateJobCard(c *gin.Context) {
	var req jobcarddomain.CreateJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.jobCardSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListJobCards(c *gin.Context) {
	var query struct {
		Status     string `form:"status"`
		CustomerID string `form:"customer_id"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.jobCardSvc.List(c.Request.Context(), jobcarddomain.ListJobCardRequest{
		Status:     strings.TrimSpace(query.Status),
		CustomerID: strings.TrimSpace(query.CustomerID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetJobCardByID(c *gin.Context) {
	resp, err := s.jobCardSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateJobCard(c *gin.Context) {
	var req jobcarddomain.UpdateJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.jobCardSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CloseJobCard(c *gin.Context) {
	resp, err := s.jobCardSvc.Close(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isJobCardValidationError(err error) bool {
	switch err {
	case jobcarddomain.ErrInvalidID,
		jobcarddomain.ErrInvalidComplaint,
		jobcarddomain.ErrInvalidStatus:
		return true
	default:
		return false
	}
}
