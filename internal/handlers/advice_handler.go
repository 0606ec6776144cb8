package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
	"github.com/ternarybob/advisor/internal/services/report"
)

// AdviceRequest carries the presentation shell inputs. Bounds mirror the
// form widgets: age 18-70, return 6.0-15.0%, duration 1-40 years.
type AdviceRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email" validate:"omitempty,email"`
	Age             int     `json:"age" validate:"required,gte=18,lte=70"`
	MonthlyIncome   int64   `json:"monthly_income" validate:"required,gt=0"`
	Risk            string  `json:"risk" validate:"required,oneof=Low Medium High"`
	Goal            string  `json:"goal" validate:"required"`
	AnnualReturnPct float64 `json:"annual_return_pct" validate:"required,gte=6,lte=15"`
	DurationYears   int     `json:"duration_years" validate:"required,gte=1,lte=40"`
	TargetCorpus    float64 `json:"target_corpus" validate:"required,gt=0"`
}

// AdviceResponse is the full advisory result for one interaction.
type AdviceResponse struct {
	SessionID   string                 `json:"session_id"`
	Allocation  models.Allocation      `json:"allocation"`
	Narration   models.Narration       `json:"narration"`
	Plan        *models.InvestmentPlan `json:"plan"`
	PlanSummary string                 `json:"plan_summary"`
	Cagr        []models.CagrReport    `json:"cagr"`
}

// AdviceHandler orchestrates one advisory interaction: allocation lookup,
// narration, plan computation, and CAGR estimation, strictly in sequence.
type AdviceHandler struct {
	policy   interfaces.AllocationPolicy
	planner  interfaces.InvestmentPlanner
	narrator interfaces.AdvisoryNarrator
	cagr     interfaces.CagrEstimator
	horizons []int
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewAdviceHandler creates a new advice handler.
func NewAdviceHandler(
	policy interfaces.AllocationPolicy,
	planner interfaces.InvestmentPlanner,
	narrator interfaces.AdvisoryNarrator,
	cagr interfaces.CagrEstimator,
	horizons []int,
	logger arbor.ILogger,
) *AdviceHandler {
	return &AdviceHandler{
		policy:   policy,
		planner:  planner,
		narrator: narrator,
		cagr:     cagr,
		horizons: horizons,
		validate: validator.New(),
		logger:   logger,
	}
}

// AdviceHandler handles POST /api/advice.
func (h *AdviceHandler) AdviceHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, status, err := h.advise(r, req)
	if err != nil {
		WriteError(w, status, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// advise runs the sequential advisory computation for a validated request.
func (h *AdviceHandler) advise(r *http.Request, req AdviceRequest) (*AdviceResponse, int, error) {
	session := models.NewSession(req.Email)

	risk, ok := models.ParseRiskProfile(req.Risk)
	if !ok {
		return nil, http.StatusBadRequest, fmt.Errorf("unknown risk profile %q", req.Risk)
	}

	profile := models.Profile{
		Name:          req.Name,
		Age:           req.Age,
		MonthlyIncome: req.MonthlyIncome,
		Risk:          risk,
		Goal:          req.Goal,
	}

	allocation, err := h.policy.AllocationFor(risk)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	// Narration blocks until the collaborator responds or times out;
	// failures degrade inside the Narration value.
	narration := h.narrator.Explain(r.Context(), session, profile, allocation)

	plan, err := h.planner.MonthlyContribution(models.InvestmentGoal{
		TargetAmount:      req.TargetCorpus,
		AnnualRatePercent: req.AnnualReturnPct,
		DurationYears:     req.DurationYears,
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	var reports []models.CagrReport
	for _, horizon := range h.horizons {
		rep, err := h.cagr.Estimate(r.Context(), horizon)
		if err != nil {
			h.logger.Warn().
				Err(err).
				Int("horizon_years", horizon).
				Str("session", session.ID).
				Msg("Skipping CAGR horizon")
			continue
		}
		reports = append(reports, *rep)
	}

	h.logger.Info().
		Str("session", session.ID).
		Str("risk", string(risk)).
		Int64("monthly", plan.Monthly).
		Bool("narration_fallback", narration.Fallback).
		Msg("Advice generated")

	return &AdviceResponse{
		SessionID:   session.ID,
		Allocation:  allocation,
		Narration:   narration,
		Plan:        plan,
		PlanSummary: planSummary(plan),
		Cagr:        reports,
	}, http.StatusOK, nil
}

// planSummary renders the fixed success sentence for the plan.
func planSummary(plan *models.InvestmentPlan) string {
	return fmt.Sprintf("To reach Rs %s in %d years at %s%% return, invest Rs %s/month.",
		report.FormatAmount(int64(plan.Goal.TargetAmount)),
		plan.Goal.DurationYears,
		report.FormatRate(plan.Goal.AnnualRatePercent),
		report.FormatAmount(plan.Monthly))
}
