package knowledge

import (
	"context"
	"fmt"

	"driveline/services/extraction"
	"driveline/utils"

	"go.uber.org/zap"
)

// Responder answers general questions about the school outside the booking
// flow. Answer never fails; on any upstream error it returns a canned
// fallback reply.
type Responder interface {
	Answer(ctx context.Context, question string) string
}

const systemPrompt = `You are the assistant of a driving school.
You answer questions about driving lessons, courses, pricing, licensing
requirements and instructors, briefly and helpfully.
You do not take bookings yourself; the booking flow handles those.
If a question is unrelated to driving or the school, politely steer the
conversation back.`

const fallbackReply = "I'm having trouble answering that right now. Please try again in a moment, or ask me to book a lesson."

// LLMResponder answers on the Gemini client shared with the extraction
// adapter.
type LLMResponder struct {
	LLM extraction.LLMClient
}

func NewLLMResponder(llm extraction.LLMClient) *LLMResponder {
	return &LLMResponder{LLM: llm}
}

func (r *LLMResponder) Answer(ctx context.Context, question string) string {
	if r.LLM == nil {
		return fallbackReply
	}
	prompt := fmt.Sprintf("%s\n\nUSER QUESTION:\n%s", systemPrompt, question)
	reply, err := r.LLM.GenerateContent(ctx, prompt)
	if err != nil || reply == "" {
		utils.GetLogger().Warn("knowledge responder failed", zap.Error(err))
		return fallbackReply
	}
	return reply
}
