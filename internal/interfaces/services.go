// Package interfaces defines the service contracts and error taxonomy
// shared across the advisor application.
package interfaces

import (
	"context"

	"github.com/ternarybob/advisor/internal/models"
)

// Message represents a single message in a chat-completion conversation.
type Message struct {
	// Role identifies the message sender: "user", "assistant", or "system"
	Role string `json:"role"`

	// Content contains the text content of the message
	Content string `json:"content"`
}

// ChatClient is a synchronous chat-completion collaborator. Implementations
// post the conversation to a hosted model and return the generated text.
type ChatClient interface {
	ChatCompletion(ctx context.Context, messages []Message) (string, error)
}

// AllocationPolicy maps a risk tolerance tier to its fixed asset allocation.
// The mapping is a design constant; the only failure mode is a risk value
// outside the enumeration (ErrInvalidArgument).
type AllocationPolicy interface {
	AllocationFor(risk models.RiskProfile) (models.Allocation, error)
}

// InvestmentPlanner computes the required monthly contribution to reach an
// investment goal using the future-value-of-annuity inversion.
type InvestmentPlanner interface {
	MonthlyContribution(goal models.InvestmentGoal) (*models.InvestmentPlan, error)
}

// CagrEstimator supplies compound annual growth rate estimates per asset
// class for a horizon in years. Implementations may be backed by a static
// table or by live market data; unavailable data degrades to absent values
// inside the report rather than an error.
type CagrEstimator interface {
	Estimate(ctx context.Context, horizonYears int) (*models.CagrReport, error)
}

// AdvisoryNarrator produces the natural-language portfolio explanation.
// It never returns an error: any collaborator failure degrades to the fixed
// fallback text with the reason surfaced in the Narration notice.
type AdvisoryNarrator interface {
	Explain(ctx context.Context, session models.Session, profile models.Profile, allocation models.Allocation) models.Narration
}

// ReportRenderer lays out a computed advisory result into a paginated
// document and returns the raw bytes.
type ReportRenderer interface {
	Render(data models.ReportData) ([]byte, error)
}
