package ai

import "context"

// EmailInput is the material handed to the summarization service for one message
type EmailInput struct {
	Subject     string
	Preview     string
	Sender      string
	ContactName string // optional CRM context
	DealTitle   string // optional CRM context
}

// Sentiment values the model is allowed to return
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
	SentimentUrgent   = "urgent"
)

// Pipeline stages the model may suggest
var allowedStages = map[string]struct{}{
	"lead":        {},
	"qualified":   {},
	"proposal":    {},
	"negotiation": {},
	"closed_won":  {},
	"closed_lost": {},
}

// EmailInsight is the structured result of analyzing one email. When the
// model's output cannot be parsed, Fallback is true and Summary holds the
// truncated raw text; parsing failure never surfaces as an error.
type EmailInsight struct {
	Summary        string   `json:"summary"`
	Sentiment      string   `json:"sentiment"`
	ActionItems    []string `json:"action_items"`
	SuggestedStage string   `json:"suggested_stage,omitempty"` // empty = no suggestion
	Fallback       bool     `json:"-"`
}

// Summarizer analyzes one email. The returned error covers transport and
// API failures only; malformed model output degrades to a fallback insight.
type Summarizer interface {
	AnalyzeEmail(ctx context.Context, input EmailInput) (*EmailInsight, error)
}

// TextGenerator is a raw prompt-in/text-out LLM client.
// Implement this to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
