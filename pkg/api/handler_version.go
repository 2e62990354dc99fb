package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skein-dev/skein/ent"
)

type userCommitRequest struct {
	Message string `json:"message" binding:"required"`
}

type enterPreviewRequest struct {
	SHA string `json:"sha" binding:"required"`
}

// projectPath resolves :id to the project's working directory.
func (s *Server) projectPath(c *gin.Context) (*ent.Project, bool) {
	p, err := s.deps.Projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return p, true
}

// listVersions handles GET /api/v1/projects/:id/versions.
func (s *Server) listVersions(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	versions, err := s.deps.Versions.ListVersions(c.Request.Context(), p.Path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// rollbackVersion handles POST /api/v1/projects/:id/versions/:sha/rollback.
func (s *Server) rollbackVersion(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	sha, err := s.deps.Versions.RollbackToVersion(c.Request.Context(), p.Path, c.Param("sha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commit": sha})
}

// versionDiff handles GET /api/v1/projects/:id/versions/:sha/diff.
func (s *Server) versionDiff(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	diff, err := s.deps.Versions.GetDiff(c.Request.Context(), p.Path, c.Param("sha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, diff)
}

// deleteVersion handles DELETE /api/v1/projects/:id/versions/:sha.
func (s *Server) deleteVersion(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	if err := s.deps.Versions.DeleteVersion(c.Request.Context(), p.Path, c.Param("sha")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// userCommit handles POST /api/v1/projects/:id/commits.
func (s *Server) userCommit(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	var req userCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sha, err := s.deps.Versions.UserCommit(c.Request.Context(), p.Path, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	// An empty sha means the working tree had nothing to commit.
	c.JSON(http.StatusOK, gin.H{"commit": sha})
}

// previewStatus handles GET /api/v1/projects/:id/preview.
func (s *Server) previewStatus(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"inPreview": s.deps.Versions.IsInPreview(p.Path)})
}

// enterPreview handles POST /api/v1/projects/:id/preview.
func (s *Server) enterPreview(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	var req enterPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.deps.Versions.EnterPreview(c.Request.Context(), p.Path, req.SHA); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inPreview": true})
}

// exitPreview handles DELETE /api/v1/projects/:id/preview. Pass ?clean=true
// to also remove files the previewed version introduced.
func (s *Server) exitPreview(c *gin.Context) {
	p, ok := s.projectPath(c)
	if !ok {
		return
	}
	clean := c.Query("clean") == "true"
	if err := s.deps.Versions.ExitPreview(c.Request.Context(), p.Path, clean); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inPreview": false})
}
