package dialogue

import (
	"context"
	"regexp"
	"strings"

	"driveline/models"
)

// An escapeRule diverts the turn away from state-specific handling. Rules
// are evaluated in declaration order (cancel > resume > question). Inside
// awaiting_confirmation only the cancel rule applies: "yes" must confirm
// there, not resume, and questions would blur the yes/no decision.
type escapeRule struct {
	name    string
	applies func(msg string) bool
	run     func(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome
}

// turnOutcome is what a rule or state handler produced for this turn.
type turnOutcome struct {
	reply string
	// clear removes the session from the store instead of saving it.
	clear bool
	// mutated marks that the session state or data changed and must be
	// written back.
	mutated bool
}

var (
	cancelPhraseRe = regexp.MustCompile(`\b(start over|cancel booking|never mind)\b`)
	cancelWords    = map[string]bool{"reset": true, "restart": true, "cancel": true}
	resumeWords    = map[string]bool{
		"yes": true, "continue": true, "proceed": true, "resume": true,
		"ok": true, "okay": true, "go on": true, "yes please": true,
	}
	questionRe = regexp.MustCompile(`^(what|how|which|who|where|why|can|do|does|is|are)\b`)
)

func normalized(msg string) string {
	lower := strings.ToLower(strings.TrimSpace(msg))
	return strings.Trim(lower, ".!?, ")
}

func isCancelMessage(msg string) bool {
	n := normalized(msg)
	if cancelWords[n] {
		return true
	}
	return cancelPhraseRe.MatchString(n)
}

func isResumeMessage(msg string) bool {
	return resumeWords[normalized(msg)]
}

// slotTimeVocabRe is deliberately narrower than the router's booking
// vocabulary: mid-flow, "how much does a lesson cost" is a question for
// the knowledge responder, but "what times are available" is input for
// the current state.
var slotTimeVocabRe = regexp.MustCompile(`\b(slot|time|avail|noon|morning|afternoon|evening)|\b(am|pm|o'?clock)\b`)

// isKnowledgeQuestion matches question phrasing that does not mention any
// slot/time vocabulary; those messages belong to the booking flow.
func isKnowledgeQuestion(msg string) bool {
	n := normalized(msg)
	if slotTimeVocabRe.MatchString(n) {
		return false
	}
	return questionRe.MatchString(n) || strings.Contains(msg, "?")
}

// escapeRules in priority order.
func escapeRules() []escapeRule {
	return []escapeRule{
		{
			name:    "cancel",
			applies: isCancelMessage,
			run: func(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
				return turnOutcome{reply: replyCancelled, clear: true}
			},
		},
		{
			name:    "resume",
			applies: isResumeMessage,
			run: func(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
				// Re-issue the state prompt without touching state or data.
				return turnOutcome{reply: promptFor(session)}
			},
		},
		{
			name:    "question",
			applies: isKnowledgeQuestion,
			run: func(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome {
				answer := e.Knowledge.Answer(ctx, msg)
				return turnOutcome{reply: answer + replyResumeNote}
			},
		},
	}
}
