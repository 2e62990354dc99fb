package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skein-dev/skein/pkg/pricing"
)

type putSettingRequest struct {
	Value string `json:"value"`
}

// listSettings handles GET /api/v1/settings?prefix=.
func (s *Server) listSettings(c *gin.Context) {
	values, err := s.deps.Settings.List(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// getSetting handles GET /api/v1/settings/:key.
func (s *Server) getSetting(c *gin.Context) {
	key := c.Param("key")
	value, ok, err := s.deps.Settings.Get(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// putSetting handles PUT /api/v1/settings/:key.
func (s *Server) putSetting(c *gin.Context) {
	var req putSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key := c.Param("key")
	if err := s.deps.Settings.Set(c.Request.Context(), key, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": req.Value})
}

// deleteSetting handles DELETE /api/v1/settings/:key.
func (s *Server) deleteSetting(c *gin.Context) {
	if err := s.deps.Settings.Delete(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getModelPricing handles GET /api/v1/pricing/models/:model.
func (s *Server) getModelPricing(c *gin.Context) {
	model := c.Param("model")
	p := s.deps.Pricing.ModelPricing(c.Request.Context(), model)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown model"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// putModelPricing handles PUT /api/v1/pricing/models/:model.
func (s *Server) putModelPricing(c *gin.Context) {
	var req pricing.ModelPricing
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.deps.Pricing.UpsertModelPricing(c.Request.Context(), c.Param("model"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// deleteModelPricing handles DELETE /api/v1/pricing/models/:model.
func (s *Server) deleteModelPricing(c *gin.Context) {
	if err := s.deps.Pricing.DeleteModelPricing(c.Request.Context(), c.Param("model")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getMultipliers handles GET /api/v1/pricing/multipliers/:provider.
func (s *Server) getMultipliers(c *gin.Context) {
	m := s.deps.Pricing.Multipliers(c.Request.Context(), c.Param("provider"))
	c.JSON(http.StatusOK, m)
}

// putMultipliers handles PUT /api/v1/pricing/multipliers/:provider.
func (s *Server) putMultipliers(c *gin.Context) {
	var req pricing.CacheMultipliers
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.deps.Pricing.UpsertMultipliers(c.Request.Context(), c.Param("provider"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// deleteMultipliers handles DELETE /api/v1/pricing/multipliers/:provider.
func (s *Server) deleteMultipliers(c *gin.Context) {
	if err := s.deps.Pricing.DeleteMultipliers(c.Request.Context(), c.Param("provider")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
