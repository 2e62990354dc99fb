package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createChatRequest struct {
	Title string `json:"title"`
}

type renameChatRequest struct {
	Title string `json:"title" binding:"required"`
}

// createChat handles POST /api/v1/projects/:id/chats.
func (s *Server) createChat(c *gin.Context) {
	var req createChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chat, err := s.deps.Chats.Create(c.Request.Context(), c.Param("id"), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chat)
}

// listChats handles GET /api/v1/projects/:id/chats.
func (s *Server) listChats(c *gin.Context) {
	rows, err := s.deps.Chats.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getChat handles GET /api/v1/chats/:id.
func (s *Server) getChat(c *gin.Context) {
	chat, err := s.deps.Chats.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// renameChat handles PATCH /api/v1/chats/:id.
func (s *Server) renameChat(c *gin.Context) {
	var req renameChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chat, err := s.deps.Chats.Rename(c.Request.Context(), c.Param("id"), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// deleteChat handles DELETE /api/v1/chats/:id.
func (s *Server) deleteChat(c *gin.Context) {
	if err := s.deps.Chats.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// listMessages handles GET /api/v1/chats/:id/messages.
func (s *Server) listMessages(c *gin.Context) {
	// A bad chat id should read as missing, not as an empty history.
	if _, err := s.deps.Chats.Get(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	rows, err := s.deps.Chats.Messages(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
