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

// ReportRequest carries the inputs for a PDF export. Explanation is
// optional: when the shell already holds a narration it is reused instead
// of issuing a second text-generation call.
type ReportRequest struct {
	AdviceRequest
	Explanation string `json:"explanation"`
	IncludeCagr bool   `json:"include_cagr"`
}

// ReportHandler produces the downloadable PDF summary.
type ReportHandler struct {
	policy   interfaces.AllocationPolicy
	planner  interfaces.InvestmentPlanner
	narrator interfaces.AdvisoryNarrator
	cagr     interfaces.CagrEstimator
	renderer interfaces.ReportRenderer
	horizons []int
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(
	policy interfaces.AllocationPolicy,
	planner interfaces.InvestmentPlanner,
	narrator interfaces.AdvisoryNarrator,
	cagr interfaces.CagrEstimator,
	renderer interfaces.ReportRenderer,
	horizons []int,
	logger arbor.ILogger,
) *ReportHandler {
	return &ReportHandler{
		policy:   policy,
		planner:  planner,
		narrator: narrator,
		cagr:     cagr,
		renderer: renderer,
		horizons: horizons,
		validate: validator.New(),
		logger:   logger,
	}
}

// GenerateHandler handles POST /api/report: it recomputes the advisory
// result and streams the rendered PDF as a file download.
func (h *ReportHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&req.AdviceRequest); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	session := models.NewSession(req.Email)

	risk, ok := models.ParseRiskProfile(req.Risk)
	if !ok {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("unknown risk profile %q", req.Risk))
		return
	}

	profile := models.Profile{
		Name:          req.Name,
		Age:           req.Age,
		MonthlyIncome: req.MonthlyIncome,
		Risk:          risk,
		Goal:          req.Goal,
	}
	if profile.Name == "" {
		profile.Name = "User"
	}

	allocation, err := h.policy.AllocationFor(risk)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	explanation := req.Explanation
	if explanation == "" {
		explanation = h.narrator.Explain(r.Context(), session, profile, allocation).Text
	}

	plan, err := h.planner.MonthlyContribution(models.InvestmentGoal{
		TargetAmount:      req.TargetCorpus,
		AnnualRatePercent: req.AnnualReturnPct,
		DurationYears:     req.DurationYears,
	})
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var reports []models.CagrReport
	if req.IncludeCagr {
		for _, horizon := range h.horizons {
			rep, err := h.cagr.Estimate(r.Context(), horizon)
			if err != nil {
				h.logger.Warn().
					Err(err).
					Int("horizon_years", horizon).
					Str("session", session.ID).
					Msg("Skipping CAGR horizon in report")
				continue
			}
			reports = append(reports, *rep)
		}
	}

	pdfBytes, err := h.renderer.Render(models.ReportData{
		Profile:     profile,
		Allocation:  allocation,
		Explanation: explanation,
		Plan:        plan,
		Cagr:        reports,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("session", session.ID).Msg("Report rendering failed")
		WriteError(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	h.logger.Info().
		Str("session", session.ID).
		Int("pdf_size", len(pdfBytes)).
		Msg("Report exported")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
