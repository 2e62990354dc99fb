package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skein-dev/skein/pkg/pipeline"
)

type sendMessageRequest struct {
	Message string            `json:"message" binding:"required"`
	Keys    map[string]string `json:"keys"`
	Agents  []string          `json:"agents"` // optional user-selected flow
}

// sendMessage handles POST /api/v1/chats/:id/messages. The pipeline run is
// started in the background; progress is observable on the event stream.
func (s *Server) sendMessage(c *gin.Context) {
	chatID := c.Param("id")
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := s.deps.Chats.Get(c.Request.Context(), chatID); err != nil {
		respondError(c, err)
		return
	}

	params := pipeline.RunParams{
		ChatID:      chatID,
		UserMessage: req.Message,
		Keys:        req.Keys,
	}
	if len(req.Agents) > 0 {
		params.Flow = pipeline.NodesForAgents(req.Agents)
	}

	// The run outlives the request; completion is reported on the bus.
	go func() {
		if _, err := s.deps.Orchestrator.Run(context.Background(), params); err != nil {
			slog.Error("Pipeline run failed", "chat_id", chatID, "error", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"chatId": chatID, "status": "started"})
}

// abortRun handles POST /api/v1/chats/:id/abort.
func (s *Server) abortRun(c *gin.Context) {
	aborted := s.deps.Orchestrator.AbortPipeline(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"aborted": aborted})
}

// listRuns handles GET /api/v1/chats/:id/runs.
func (s *Server) listRuns(c *gin.Context) {
	rows, err := s.deps.Runs.ListByChat(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getRun handles GET /api/v1/runs/:id.
func (s *Server) getRun(c *gin.Context) {
	run, err := s.deps.Runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// listExecutions handles GET /api/v1/runs/:id/executions.
func (s *Server) listExecutions(c *gin.Context) {
	rows, err := s.deps.Runs.Executions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// streamEvents handles GET /api/v1/chats/:id/events as a server-sent event
// stream. The subscription drops events if the client cannot keep up.
func (s *Server) streamEvents(c *gin.Context) {
	ch, cancel := s.deps.Bus.Subscribe(c.Param("id"))
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
