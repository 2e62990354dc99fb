// Package api exposes the HTTP surface: projects, chats, pipeline runs,
// version history, settings, pricing overrides, and usage reporting.
package api

import (
	stdsql "database/sql"

	"github.com/gin-gonic/gin"

	"github.com/skein-dev/skein/pkg/gitstore"
	"github.com/skein-dev/skein/pkg/pipeline"
	"github.com/skein-dev/skein/pkg/pricing"
	"github.com/skein-dev/skein/pkg/services"
	"github.com/skein-dev/skein/pkg/settings"
)

// Deps are the server's collaborators, wired in main.
type Deps struct {
	DB           *stdsql.DB
	Projects     *services.ProjectService
	Chats        *services.ChatService
	Runs         *services.RunService
	Usage        *services.UsageService
	Snapshots    *services.SnapshotService
	Settings     *settings.Store
	Pricing      *pricing.Engine
	Versions     *gitstore.Store
	Orchestrator *pipeline.Orchestrator
	Bus          *pipeline.Bus
}

// Server is the HTTP API server.
type Server struct {
	deps Deps
}

// NewServer creates a new API server.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/projects", s.createProject)
		v1.GET("/projects", s.listProjects)
		v1.GET("/projects/:id", s.getProject)
		v1.PATCH("/projects/:id", s.renameProject)
		v1.DELETE("/projects/:id", s.deleteProject)

		v1.POST("/projects/:id/chats", s.createChat)
		v1.GET("/projects/:id/chats", s.listChats)
		v1.GET("/projects/:id/usage", s.projectUsage)
		v1.GET("/projects/:id/snapshots", s.listSnapshots)

		v1.GET("/projects/:id/versions", s.listVersions)
		v1.POST("/projects/:id/versions/:sha/rollback", s.rollbackVersion)
		v1.GET("/projects/:id/versions/:sha/diff", s.versionDiff)
		v1.DELETE("/projects/:id/versions/:sha", s.deleteVersion)
		v1.POST("/projects/:id/commits", s.userCommit)
		v1.GET("/projects/:id/preview", s.previewStatus)
		v1.POST("/projects/:id/preview", s.enterPreview)
		v1.DELETE("/projects/:id/preview", s.exitPreview)

		v1.GET("/chats/:id", s.getChat)
		v1.PATCH("/chats/:id", s.renameChat)
		v1.DELETE("/chats/:id", s.deleteChat)
		v1.GET("/chats/:id/messages", s.listMessages)
		v1.POST("/chats/:id/messages", s.sendMessage)
		v1.POST("/chats/:id/abort", s.abortRun)
		v1.GET("/chats/:id/runs", s.listRuns)
		v1.GET("/chats/:id/events", s.streamEvents)

		v1.GET("/runs/:id", s.getRun)
		v1.GET("/runs/:id/executions", s.listExecutions)

		v1.GET("/settings", s.listSettings)
		v1.GET("/settings/:key", s.getSetting)
		v1.PUT("/settings/:key", s.putSetting)
		v1.DELETE("/settings/:key", s.deleteSetting)

		v1.GET("/pricing/models/:model", s.getModelPricing)
		v1.PUT("/pricing/models/:model", s.putModelPricing)
		v1.DELETE("/pricing/models/:model", s.deleteModelPricing)
		v1.GET("/pricing/multipliers/:provider", s.getMultipliers)
		v1.PUT("/pricing/multipliers/:provider", s.putMultipliers)
		v1.DELETE("/pricing/multipliers/:provider", s.deleteMultipliers)

		v1.GET("/usage", s.totalUsage)
		v1.GET("/usage/daily", s.dailyUsage)
	}

	return r
}
