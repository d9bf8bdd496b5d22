package handlers

import (
	"net/http"

	"driveline/services/dialogue"
	"driveline/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes read-only session diagnostics.
type AdminHandler struct {
	Engine *dialogue.Engine
}

func NewAdminHandler(engine *dialogue.Engine) *AdminHandler {
	return &AdminHandler{Engine: engine}
}

// ListSessionsHandler enumerates all live session identifiers.
func (h *AdminHandler) ListSessionsHandler(c *gin.Context) {
	ids, err := h.Engine.LiveSessionIDs(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list sessions", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": ids})
}

// GetSessionHandler returns one session's current state and data.
func (h *AdminHandler) GetSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Engine.SessionSnapshot(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}
