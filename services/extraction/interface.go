package extraction

import (
	"context"
	"time"

	"driveline/models"
	"driveline/utils"

	"go.uber.org/zap"
)

// Extractor turns raw user text into typed, best-effort results. Operations
// never fail: ambiguity, oracle transport errors, and malformed oracle
// output all degrade to the unresolved result.
type Extractor interface {
	ExtractDate(ctx context.Context, text string) models.DateResult
	ExtractTime(ctx context.Context, text string) models.TimeResult
	// ExtractTimeLoose is the second, looser pass used when ExtractTime
	// comes up empty on a message that should contain a time.
	ExtractTimeLoose(ctx context.Context, text string) models.TimeResult
	ClassifyIntent(ctx context.Context, text string, options []string) models.IntentResult
	ExtractBoundedNumber(ctx context.Context, text string, min, max int) models.NumberResult
	ExtractContact(ctx context.Context, text string) models.ContactResult
}

// DefaultExtractor runs a deterministic local pass first and falls back to
// the LLM oracle only when the local pass yields nothing. A nil LLM means
// the fallback is skipped and unresolved is returned directly.
type DefaultExtractor struct {
	LLM            LLMClient
	LessonDuration time.Duration
	Now            func() time.Time
}

func NewDefaultExtractor(llm LLMClient, lessonDuration time.Duration) *DefaultExtractor {
	return &DefaultExtractor{
		LLM:            llm,
		LessonDuration: lessonDuration,
		Now:            time.Now,
	}
}

func (e *DefaultExtractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ExtractDate resolves relative and absolute natural-language dates.
func (e *DefaultExtractor) ExtractDate(ctx context.Context, text string) models.DateResult {
	if res, ok := parseNaturalDate(text, e.now()); ok {
		return res
	}
	return e.oracleDate(ctx, text)
}

// ExtractTime resolves clock expressions to HH:MM; End is Start plus the
// lesson duration.
func (e *DefaultExtractor) ExtractTime(ctx context.Context, text string) models.TimeResult {
	if start, ok := parseClockTime(text); ok {
		return e.timeResult(start)
	}
	return e.oracleTime(ctx, text)
}

// ExtractTimeLoose additionally accepts a bare hour, reading 1-8 as
// afternoon.
func (e *DefaultExtractor) ExtractTimeLoose(ctx context.Context, text string) models.TimeResult {
	if res := e.ExtractTime(ctx, text); res.Resolved {
		return res
	}
	if start, ok := parseBareHour(text); ok {
		return e.timeResult(start)
	}
	return models.TimeResult{}
}

// ClassifyIntent returns the best match from a small option set.
func (e *DefaultExtractor) ClassifyIntent(ctx context.Context, text string, options []string) models.IntentResult {
	if opt, ok := matchIntentLocally(text, options); ok {
		return models.IntentResult{Resolved: true, Option: opt}
	}
	return e.oracleIntent(ctx, text, options)
}

// ExtractBoundedNumber resolves cardinal, ordinal, and bare-digit phrasing
// to an integer in [min, max]. Out-of-range resolves to unresolved.
func (e *DefaultExtractor) ExtractBoundedNumber(ctx context.Context, text string, min, max int) models.NumberResult {
	if n, ok := parseCardinal(text); ok {
		if n < min || n > max {
			return models.NumberResult{}
		}
		return models.NumberResult{Resolved: true, Value: n}
	}
	return e.oracleNumber(ctx, text, min, max)
}

// ExtractContact first runs the deterministic name+phone pattern match and
// falls back to the oracle only when neither field was found.
func (e *DefaultExtractor) ExtractContact(ctx context.Context, text string) models.ContactResult {
	res := parseContact(text)
	if res.Name != "" || res.Phone != "" {
		return res
	}
	return e.oracleContact(ctx, text)
}

func (e *DefaultExtractor) timeResult(start clock) models.TimeResult {
	end := start.add(e.LessonDuration)
	return models.TimeResult{
		Resolved: true,
		Start:    start.String(),
		End:      end.String(),
	}
}

// ask sends a prompt to the oracle and scrapes the first JSON object out of
// the raw reply. Transport failure or a reply without JSON returns false.
func (e *DefaultExtractor) ask(ctx context.Context, prompt string) (string, bool) {
	if e.LLM == nil {
		return "", false
	}
	raw, err := e.LLM.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Warn("extraction oracle call failed", zap.Error(err))
		return "", false
	}
	payload := scrapeJSON(raw)
	if payload == "" {
		utils.GetLogger().Warn("extraction oracle returned no JSON", zap.String("raw", raw))
		return "", false
	}
	return payload, true
}
