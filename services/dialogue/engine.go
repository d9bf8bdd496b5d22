// File: services/dialogue/engine.go
package dialogue

import (
	"context"
	"strings"
	"sync"
	"time"

	"driveline/models"
	"driveline/services/availability"
	"driveline/services/extraction"
	"driveline/services/knowledge"
	"driveline/utils"

	"go.uber.org/zap"
)

// stateHandler consumes one message for one dialogue state.
type stateHandler func(ctx context.Context, e *Engine, session *models.ChatSession, msg string) turnOutcome

// Engine is the booking dialogue state machine. Each inbound message
// yields exactly one reply and at most one state transition. Turns on the
// same session id are serialized with a per-session mutex; the session is
// read once, mutated in memory and written back (or cleared) at the end of
// the turn.
type Engine struct {
	Store     SessionStore
	Extractor extraction.Extractor
	Gateway   availability.Gateway
	Knowledge knowledge.Responder

	handlers map[models.SessionState]stateHandler
	rules    []escapeRule

	mu        sync.Mutex
	turnLocks map[string]*sync.Mutex
}

func NewEngine(store SessionStore, ex extraction.Extractor, gw availability.Gateway, kn knowledge.Responder) *Engine {
	e := &Engine{
		Store:     store,
		Extractor: ex,
		Gateway:   gw,
		Knowledge: kn,
		rules:     escapeRules(),
		turnLocks: make(map[string]*sync.Mutex),
	}
	e.handlers = map[models.SessionState]stateHandler{
		models.StateAwaitingAction:        handleAwaitingAction,
		models.StateAwaitingInstructor:    handleAwaitingInstructor,
		models.StateAwaitingDate:          handleAwaitingDate,
		models.StateAwaitingTimeCheck:     handleAwaitingTimeCheck,
		models.StateAwaitingSlotSelection: handleAwaitingSlotSelection,
		models.StateAwaitingSpecificTime:  handleAwaitingSpecificTime,
		models.StateAwaitingDateAllSlots:  handleAwaitingDateAllSlots,
		models.StateAwaitingSlotFromAll:   handleAwaitingSlotFromAll,
		models.StateAwaitingStudentInfo:   handleAwaitingStudentInfo,
		models.StateAwaitingConfirmation:  handleAwaitingConfirmation,
	}
	return e
}

// sessionLock returns the mutex serializing turns for one session id.
func (e *Engine) sessionLock(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.turnLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		e.turnLocks[id] = lock
	}
	return lock
}

// releaseSessionLock drops a cleared session's mutex from the map so the
// map does not grow one entry per session id forever. A turn already
// blocked on the old mutex still serializes against it; only turns
// arriving after the clear get a fresh lock.
func (e *Engine) releaseSessionLock(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.turnLocks, id)
}

// HandleMessage processes one inbound message and returns the reply. It
// never returns an error and never panics out: a catastrophic failure
// inside the turn degrades to a generic apology.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, message string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Error("dialogue turn panicked",
				zap.String("sessionId", sessionID), zap.Any("error", r))
			reply = replyGenericFailure
		}
	}()

	message = strings.TrimSpace(message)
	if message == "" {
		return replyPromptForInput
	}

	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("failed to load session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	if session == nil {
		session = models.NewChatSession(sessionID)
	}

	outcome := e.handleTurn(ctx, session, message)

	if outcome.clear {
		if err := e.Store.Delete(ctx, sessionID); err != nil {
			utils.GetLogger().Error("failed to clear session",
				zap.String("sessionId", sessionID), zap.Error(err))
		}
		e.releaseSessionLock(sessionID)
	} else if outcome.mutated {
		session.UpdatedAt = time.Now()
		if err := e.Store.Put(ctx, session); err != nil {
			utils.GetLogger().Error("failed to save session",
				zap.String("sessionId", sessionID), zap.Error(err))
		}
	}
	return outcome.reply
}

func (e *Engine) handleTurn(ctx context.Context, session *models.ChatSession, msg string) turnOutcome {
	// Idle sessions go through the intent router: booking vocabulary
	// enters the flow, anything else is a knowledge question.
	if session.State == models.StateIdle {
		if !isBookingMessage(msg) {
			return turnOutcome{reply: e.Knowledge.Answer(ctx, msg)}
		}
		session.State = models.StateAwaitingAction
		return turnOutcome{reply: replyChooseAction, mutated: true}
	}

	// Escape hatches, in priority order. Inside awaiting_confirmation only
	// cancellation escapes; "yes" confirms there, it does not resume.
	for _, rule := range e.rules {
		if session.State == models.StateAwaitingConfirmation && rule.name != "cancel" {
			continue
		}
		if rule.applies(msg) {
			utils.GetLogger().Debug("escape rule fired",
				zap.String("rule", rule.name),
				zap.String("sessionId", session.ID),
				zap.String("state", string(session.State)))
			return rule.run(ctx, e, session, msg)
		}
	}

	handler, ok := e.handlers[session.State]
	if !ok {
		// Unknown state can only come from a stale persisted blob; reset.
		utils.GetLogger().Warn("session in unknown state, resetting",
			zap.String("sessionId", session.ID), zap.String("state", string(session.State)))
		return turnOutcome{reply: replyCancelled, clear: true}
	}
	return handler(ctx, e, session, msg)
}

// SessionSnapshot returns a session's current state for diagnostics.
func (e *Engine) SessionSnapshot(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	return e.Store.Get(ctx, sessionID)
}

// LiveSessionIDs enumerates all live session identifiers for diagnostics.
func (e *Engine) LiveSessionIDs(ctx context.Context) ([]string, error) {
	return e.Store.Keys(ctx)
}
