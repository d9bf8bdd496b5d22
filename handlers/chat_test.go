package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"driveline/models"
	"driveline/services/dialogue"
	"driveline/services/extraction"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubGateway struct{}

func (stubGateway) ListActiveInstructors(ctx context.Context) []models.Instructor {
	return []models.Instructor{{Name: "Alice Smith", Email: "alice@school.test"}}
}

func (stubGateway) ListFreeSlots(ctx context.Context, instructor models.Instructor, date string) []models.Slot {
	return nil
}

func (stubGateway) IsTimeFree(ctx context.Context, instructor models.Instructor, date, start string) bool {
	return true
}

func (stubGateway) SubmitPendingBooking(ctx context.Context, req models.BookingRequest) error {
	return nil
}

type stubKnowledge struct{}

func (stubKnowledge) Answer(ctx context.Context, question string) string {
	return "We teach defensive driving."
}

func newChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := dialogue.NewMemoryStore(30 * time.Minute)
	engine := dialogue.NewEngine(store, extraction.NewDefaultExtractor(nil, time.Hour), stubGateway{}, stubKnowledge{})

	r := gin.New()
	r.POST("/api/chat", NewChatHandler(engine).HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, models.ChatReply) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var reply models.ChatReply
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	return w, reply
}

func TestHandleChatIssuesSessionID(t *testing.T) {
	r := newChatRouter()

	w, reply := postChat(t, r, `{"message": "hello, what do you teach?"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, reply.SessionID)
	assert.Equal(t, "We teach defensive driving.", reply.Reply)
}

func TestHandleChatEchoesSessionID(t *testing.T) {
	r := newChatRouter()

	w, reply := postChat(t, r, `{"message": "book a lesson", "sessionId": "widget-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "widget-1", reply.SessionID)
	assert.Contains(t, reply.Reply, "Reply with 1 or 2")
}

func TestHandleChatMissingMessage(t *testing.T) {
	r := newChatRouter()

	w, reply := postChat(t, r, `{"sessionId": "widget-1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Please type a message so I can help you.", reply.Reply)
}

func TestHandleChatMalformedBody(t *testing.T) {
	r := newChatRouter()

	w, reply := postChat(t, r, `{not json`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, promptForMessage, reply.Reply)
}
