package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// totalUsage handles GET /api/v1/usage.
func (s *Server) totalUsage(c *gin.Context) {
	sum, err := s.deps.Usage.TotalSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// dailyUsage handles GET /api/v1/usage/daily.
func (s *Server) dailyUsage(c *gin.Context) {
	sum, err := s.deps.Usage.DailySummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
