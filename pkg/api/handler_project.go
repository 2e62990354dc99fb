package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createProjectRequest struct {
	Name string `json:"name" binding:"required"`
	Path string `json:"path" binding:"required"`
}

type renameRequest struct {
	Name string `json:"name" binding:"required"`
}

// createProject handles POST /api/v1/projects.
func (s *Server) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.deps.Projects.Create(c.Request.Context(), req.Name, req.Path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// listProjects handles GET /api/v1/projects.
func (s *Server) listProjects(c *gin.Context) {
	rows, err := s.deps.Projects.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getProject handles GET /api/v1/projects/:id.
func (s *Server) getProject(c *gin.Context) {
	p, err := s.deps.Projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// renameProject handles PATCH /api/v1/projects/:id.
func (s *Server) renameProject(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.deps.Projects.Rename(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// deleteProject handles DELETE /api/v1/projects/:id.
func (s *Server) deleteProject(c *gin.Context) {
	if err := s.deps.Projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// projectUsage handles GET /api/v1/projects/:id/usage.
func (s *Server) projectUsage(c *gin.Context) {
	// Resolve the project first so a bad id is a 404, not an empty summary.
	p, err := s.deps.Projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	sum, err := s.deps.Usage.ProjectSummary(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// listSnapshots handles GET /api/v1/projects/:id/snapshots.
func (s *Server) listSnapshots(c *gin.Context) {
	rows, err := s.deps.Snapshots.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
