package handlers

import (
	"net/http"

	"driveline/models"
	"driveline/services/dialogue"
	"driveline/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const promptForMessage = "Please type a message so I can help you."

// ChatHandler serves the conversational booking endpoint.
type ChatHandler struct {
	Engine *dialogue.Engine
}

func NewChatHandler(engine *dialogue.Engine) *ChatHandler {
	return &ChatHandler{Engine: engine}
}

// HandleChat processes one chat turn. A missing message yields the fixed
// prompt reply, not an error status. A missing session id gets a
// server-issued one, echoed back so the widget can keep it.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, models.ChatReply{Reply: promptForMessage})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	reply := h.Engine.HandleMessage(c.Request.Context(), sessionID, req.Message)

	utils.GetLogger().Debug("chat turn",
		zap.String("sessionId", sessionID),
		zap.Int("messageLen", len(req.Message)))

	c.JSON(http.StatusOK, models.ChatReply{Reply: reply, SessionID: sessionID})
}
