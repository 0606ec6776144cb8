// Package portfolio maps risk tolerance tiers to fixed asset allocations.
package portfolio

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

// Service implements interfaces.AllocationPolicy.
type Service struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.AllocationPolicy = (*Service)(nil)

// NewService creates a new allocation policy service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// AllocationFor returns the fixed allocation for a risk tier. The table is
// a design constant; every allocation sums to exactly 100.
func (s *Service) AllocationFor(risk models.RiskProfile) (models.Allocation, error) {
	switch risk {
	case models.RiskLow:
		return models.Allocation{Equity: 30, Debt: 60, Gold: 10}, nil
	case models.RiskMedium:
		return models.Allocation{Equity: 50, Debt: 40, Gold: 10}, nil
	case models.RiskHigh:
		return models.Allocation{Equity: 70, Debt: 20, Gold: 10}, nil
	default:
		return models.Allocation{}, fmt.Errorf("%w: unknown risk profile %q", interfaces.ErrInvalidArgument, risk)
	}
}
