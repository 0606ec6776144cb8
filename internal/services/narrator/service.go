// Package narrator produces the natural-language portfolio explanation by
// delegating to a hosted chat-completion model.
package narrator

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

const (
	// systemPrompt sets the advisor persona for every narration request.
	systemPrompt = "You are a helpful financial advisor."

	// FallbackText is returned verbatim whenever the text-generation call
	// fails. Failure containment here is wrap-and-degrade, not retry.
	FallbackText = "Sorry, I couldn't fetch the explanation right now."
)

// Service implements interfaces.AdvisoryNarrator.
type Service struct {
	chat   interfaces.ChatClient
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.AdvisoryNarrator = (*Service)(nil)

// NewService creates a new narrator backed by a chat-completion client.
// A nil client is allowed; narration then always degrades to the fallback.
func NewService(chat interfaces.ChatClient, logger arbor.ILogger) *Service {
	return &Service{
		chat:   chat,
		logger: logger,
	}
}

// buildPrompt renders the fixed narration template for a profile and its
// allocation.
func buildPrompt(profile models.Profile, allocation models.Allocation) string {
	return fmt.Sprintf(
		"Act like a professional financial advisor. "+
			"Explain this portfolio allocation for a %d-year-old with %s risk tolerance. "+
			"Goal: %s. "+
			"Allocation: Equity %d%%, Debt %d%%, Gold %d%%.",
		profile.Age, profile.Risk, profile.Goal,
		allocation.Equity, allocation.Debt, allocation.Gold,
	)
}

// Explain requests the portfolio explanation. Any failure (transport,
// non-2xx status, malformed body) degrades to the fixed fallback text with
// the reason in the notice; the error never propagates to the caller.
func (s *Service) Explain(ctx context.Context, session models.Session, profile models.Profile, allocation models.Allocation) models.Narration {
	if s.chat == nil {
		return models.Narration{
			Text:     FallbackText,
			Fallback: true,
			Notice:   "advisor explanation unavailable: text-generation service not configured",
		}
	}

	messages := []interfaces.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(profile, allocation)},
	}

	text, err := s.chat.ChatCompletion(ctx, messages)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn().
				Err(err).
				Str("session", session.ID).
				Int("age", profile.Age).
				Str("risk", string(profile.Risk)).
				Msg("Chat completion failed, using fallback narration")
		}
		return models.Narration{
			Text:     FallbackText,
			Fallback: true,
			Notice:   "advisor explanation unavailable: " + err.Error(),
		}
	}

	if s.logger != nil {
		s.logger.Debug().
			Str("session", session.ID).
			Int("text_len", len(text)).
			Msg("Narration generated")
	}

	return models.Narration{Text: text}
}
