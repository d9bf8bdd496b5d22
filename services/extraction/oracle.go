package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"driveline/models"
	"driveline/utils"

	"go.uber.org/zap"
)

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*?\}`)

// scrapeJSON extracts the first JSON object from raw model output, which
// routinely arrives wrapped in prose or code fences.
func scrapeJSON(raw string) string {
	return jsonObjectRe.FindString(raw)
}

const datePromptTemplate = `Convert the date expression to YYYY-MM-DD format.

TODAY'S INFO:
- Date: %s
- Day: %s

UNDERSTAND THESE PHRASES:
- "tomorrow" = add 1 day to today
- "after 10 days" = add 10 days to today
- "next Monday" = next occurrence of Monday, never today
- "in 2 weeks" = add 14 days
- "this Friday" = upcoming Friday this week
- "January 20" = current year if not specified

RULES:
- Do NOT guess missing information
- Return null for fields not found in the message

USER INPUT: "%s"

Return ONLY valid JSON with these exact keys:
{
  "date": "YYYY-MM-DD" or null,
  "formatted": "Monday, January 20, 2026" or null
}

Return JSON only, no explanation:`

func (e *DefaultExtractor) oracleDate(ctx context.Context, text string) models.DateResult {
	now := e.now()
	prompt := fmt.Sprintf(datePromptTemplate, now.Format("2006-01-02"), now.Format("Monday"), text)
	payload, ok := e.ask(ctx, prompt)
	if !ok {
		return models.DateResult{}
	}

	var out struct {
		Date      *string `json:"date"`
		Formatted *string `json:"formatted"`
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil || out.Date == nil {
		return models.DateResult{}
	}
	// Re-run the local parser over the oracle's answer so a malformed date
	// string cannot leak through.
	res, resolved := parseNaturalDate(*out.Date, now)
	if !resolved {
		utils.GetLogger().Warn("oracle returned unparsable date", zap.String("date", *out.Date))
		return models.DateResult{}
	}
	if out.Formatted != nil && *out.Formatted != "" {
		res.Formatted = *out.Formatted
	}
	return res
}

const timePromptTemplate = `Convert time to 24-hour format.

Examples:
- "10 AM" -> "10:00"
- "2:30 PM" -> "14:30"
- "noon" -> "12:00"

USER INPUT: "%s"

Return ONLY valid JSON:
{
  "time": "HH:MM" or null
}

Return JSON only, no explanation:`

func (e *DefaultExtractor) oracleTime(ctx context.Context, text string) models.TimeResult {
	payload, ok := e.ask(ctx, fmt.Sprintf(timePromptTemplate, text))
	if !ok {
		return models.TimeResult{}
	}

	var out struct {
		Time *string `json:"time"`
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil || out.Time == nil {
		return models.TimeResult{}
	}
	start, resolved := parseClockTime(*out.Time)
	if !resolved {
		utils.GetLogger().Warn("oracle returned unparsable time", zap.String("time", *out.Time))
		return models.TimeResult{}
	}
	return e.timeResult(start)
}

const intentPromptTemplate = `Pick the option that best matches the user's message.

OPTIONS:
%s

USER MESSAGE: "%s"

Return ONLY valid JSON:
{
  "option": one of the options exactly as written, or null
}

Return JSON only, no explanation:`

func (e *DefaultExtractor) oracleIntent(ctx context.Context, text string, options []string) models.IntentResult {
	payload, ok := e.ask(ctx, fmt.Sprintf(intentPromptTemplate, strings.Join(options, "\n"), text))
	if !ok {
		return models.IntentResult{}
	}

	var out struct {
		Option *string `json:"option"`
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil || out.Option == nil {
		return models.IntentResult{}
	}
	for _, opt := range options {
		if strings.EqualFold(opt, *out.Option) {
			return models.IntentResult{Resolved: true, Option: opt}
		}
	}
	return models.IntentResult{}
}

const numberPromptTemplate = `Extract the number the user picked, between %d and %d.
Understand cardinals ("5"), ordinals ("the fifth one") and phrases ("number 5").

USER MESSAGE: "%s"

Return ONLY valid JSON:
{
  "number": integer or null
}

Return JSON only, no explanation:`

func (e *DefaultExtractor) oracleNumber(ctx context.Context, text string, min, max int) models.NumberResult {
	payload, ok := e.ask(ctx, fmt.Sprintf(numberPromptTemplate, min, max, text))
	if !ok {
		return models.NumberResult{}
	}

	var out struct {
		Number *int `json:"number"`
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil || out.Number == nil {
		return models.NumberResult{}
	}
	if *out.Number < min || *out.Number > max {
		return models.NumberResult{}
	}
	return models.NumberResult{Resolved: true, Value: *out.Number}
}

const contactPromptTemplate = `Extract the student's full name and 10-digit phone number.

RULES:
- Do NOT guess missing information
- Return null for fields not found in the message

USER MESSAGE: "%s"

Return ONLY valid JSON:
{
  "name": string or null,
  "phone": string or null
}

Return JSON only, no explanation:`

func (e *DefaultExtractor) oracleContact(ctx context.Context, text string) models.ContactResult {
	payload, ok := e.ask(ctx, fmt.Sprintf(contactPromptTemplate, text))
	if !ok {
		return models.ContactResult{}
	}

	var out struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return models.ContactResult{}
	}
	var res models.ContactResult
	if out.Name != nil {
		res.Name = strings.TrimSpace(*out.Name)
	}
	if out.Phone != nil {
		res.Phone = strings.TrimSpace(*out.Phone)
	}
	return res
}
