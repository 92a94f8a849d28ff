package ai

import (
	"context"
	"fmt"
	"strings"
)

// Service turns a raw TextGenerator into a Summarizer by prompting for a
// JSON object and defensively parsing whatever comes back
type Service struct {
	gen TextGenerator
}

func NewService(gen TextGenerator) *Service {
	return &Service{gen: gen}
}

const analysisPrompt = `You are a CRM assistant. Analyze the email below and respond with ONLY a JSON object, no other text:
{
  "summary": "1-2 sentence summary",
  "sentiment": "positive|neutral|negative|urgent",
  "action_items": ["..."],
  "suggested_stage": "lead|qualified|proposal|negotiation|closed_won|closed_lost or null"
}

EMAIL:
From: %s
Subject: %s
Body: %s%s`

func (s *Service) AnalyzeEmail(ctx context.Context, input EmailInput) (*EmailInsight, error) {
	var crmContext strings.Builder
	if input.ContactName != "" {
		fmt.Fprintf(&crmContext, "\nKnown contact: %s", input.ContactName)
	}
	if input.DealTitle != "" {
		fmt.Fprintf(&crmContext, "\nRelated deal: %s", input.DealTitle)
	}

	// Truncate to avoid token limits
	preview := truncate(input.Preview, 5000)

	prompt := fmt.Sprintf(analysisPrompt, input.Sender, input.Subject, preview, crmContext.String())

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseInsight(raw), nil
}
