package ai

import (
	"fmt"

	"crm-backend/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	GeminiAPIKey string
}

// NewSummarizer creates a Summarizer backed by the configured provider.
// This is the factory function - new providers plug in as TextGenerators.
func NewSummarizer(cfg Config) (Summarizer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return NewService(gemini.NewGeminiService(cfg.GeminiAPIKey)), nil
}
