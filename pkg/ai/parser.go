package ai

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const fallbackSummaryLimit = 300

// rawInsight mirrors the JSON shape the model is prompted for. Fields are
// loosely typed so a single unexpected value does not sink the whole parse.
type rawInsight struct {
	Summary        string          `json:"summary"`
	Sentiment      string          `json:"sentiment"`
	ActionItems    json.RawMessage `json:"action_items"`
	SuggestedStage *string         `json:"suggested_stage"`
}

// ParseInsight extracts a structured insight from the model's free-form
// response. It tolerates code fences and surrounding prose, coerces invalid
// enum values, and degrades to a fallback insight instead of failing.
func ParseInsight(raw string) *EmailInsight {
	payload, ok := extractJSON(raw)
	if !ok {
		return FallbackInsight(raw)
	}

	var parsed rawInsight
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return FallbackInsight(raw)
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		return FallbackInsight(raw)
	}

	insight := &EmailInsight{
		Summary:     strings.TrimSpace(parsed.Summary),
		Sentiment:   normalizeSentiment(parsed.Sentiment),
		ActionItems: parseActionItems(parsed.ActionItems),
	}

	if parsed.SuggestedStage != nil {
		stage := strings.ToLower(strings.TrimSpace(*parsed.SuggestedStage))
		if _, allowed := allowedStages[stage]; allowed {
			insight.SuggestedStage = stage
		}
	}

	return insight
}

// FallbackInsight wraps unparsable model output: truncated raw text as the
// summary, neutral sentiment, no action items, no stage suggestion
func FallbackInsight(raw string) *EmailInsight {
	summary := strings.TrimSpace(raw)
	if len(summary) > fallbackSummaryLimit {
		summary = truncate(summary, fallbackSummaryLimit) + "..."
	}
	return &EmailInsight{
		Summary:     summary,
		Sentiment:   SentimentNeutral,
		ActionItems: []string{},
		Fallback:    true,
	}
}

// truncate cuts s to at most limit bytes without splitting a UTF-8 rune
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// extractJSON locates the JSON object inside the response, stripping
// markdown code fences and any prose around it
func extractJSON(raw string) (string, bool) {
	text := strings.TrimSpace(raw)

	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			text = rest[:end]
		} else {
			text = rest
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func normalizeSentiment(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	case SentimentUrgent:
		return SentimentUrgent
	default:
		return SentimentNeutral
	}
}

// parseActionItems accepts a JSON array of strings; anything else (a bare
// string, a number, null) yields an empty list
func parseActionItems(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
