// Package planner computes monthly investment plans from an investment goal
// using the future-value-of-annuity inversion.
package planner

import (
	"fmt"
	"math"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

// Service implements interfaces.InvestmentPlanner.
type Service struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.InvestmentPlanner = (*Service)(nil)

// NewService creates a new investment planner service.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// MonthlyContribution computes the periodic contribution required to reach
// the target amount after the goal duration, assuming monthly compounding
// at the annual rate:
//
//	monthly = target * r / ((1+r)^n - 1)   with r = rate/100/12, n = years*12
//
// A zero rate makes the formula undefined (division by zero) and is
// special-cased to target/n. The result is rounded to the nearest whole
// currency unit, half away from zero.
func (s *Service) MonthlyContribution(goal models.InvestmentGoal) (*models.InvestmentPlan, error) {
	if goal.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: target amount must be positive, got %v", interfaces.ErrInvalidArgument, goal.TargetAmount)
	}
	if goal.DurationYears <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %d years", interfaces.ErrInvalidArgument, goal.DurationYears)
	}
	if goal.AnnualRatePercent < 0 {
		return nil, fmt.Errorf("%w: annual rate must not be negative, got %v", interfaces.ErrInvalidArgument, goal.AnnualRatePercent)
	}

	months := float64(goal.DurationYears * 12)

	var monthly float64
	if goal.AnnualRatePercent == 0 {
		monthly = goal.TargetAmount / months
	} else {
		monthlyRate := goal.AnnualRatePercent / 100 / 12
		monthly = goal.TargetAmount * monthlyRate / (math.Pow(1+monthlyRate, months) - 1)
	}

	plan := &models.InvestmentPlan{
		Goal:    goal,
		Monthly: int64(math.Round(monthly)),
	}

	if s.logger != nil {
		s.logger.Debug().
			Float64("target", goal.TargetAmount).
			Float64("rate_pct", goal.AnnualRatePercent).
			Int("years", goal.DurationYears).
			Int64("monthly", plan.Monthly).
			Msg("Computed investment plan")
	}

	return plan, nil
}
