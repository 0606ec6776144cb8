// Package report renders the advisory result into a paginated PDF document.
package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/interfaces"
	"github.com/ternarybob/advisor/internal/models"
)

const (
	// ReportTitle is the document heading.
	ReportTitle = "Wealth Advisor Report"

	// FileName is the download name offered to the user.
	FileName = "Wealth_Report.pdf"
)

// Service implements interfaces.ReportRenderer.
type Service struct {
	logger arbor.ILogger
}

// Compile-time assertion
var _ interfaces.ReportRenderer = (*Service)(nil)

// NewService creates a new report renderer.
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		logger: logger,
	}
}

// Render lays out the report sequentially: title, profile, allocation,
// explanation, then the optional plan and CAGR sections. Layout is
// deterministic; identical input produces identical bytes.
func (s *Service) Render(data models.ReportData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, ReportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)

	// Profile
	pdf.Ln(6)
	pdf.MultiCell(0, 8, fmt.Sprintf("Name: %s    Age: %d    Monthly Income: Rs %s",
		data.Profile.Name, data.Profile.Age, FormatAmount(data.Profile.MonthlyIncome)), "", "L", false)
	pdf.MultiCell(0, 8, fmt.Sprintf("Risk Tolerance: %s    Goal: %s",
		data.Profile.Risk, data.Profile.Goal), "", "L", false)

	// Allocation
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Portfolio Allocation:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for _, item := range data.Allocation.Items() {
		pdf.CellFormat(0, 8, fmt.Sprintf("- %s: %d%%", item.Asset, item.Percent), "", 1, "L", false, 0, "")
	}

	// Explanation
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Advisor's Explanation:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, data.Explanation, "", "L", false)

	// Monthly investment plan
	if data.Plan != nil {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Monthly Investment Plan:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 8, planBlock(data.Plan), "", "L", false)
	}

	// CAGR estimates
	if len(data.Cagr) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "CAGR Estimates:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		for _, horizon := range data.Cagr {
			for _, est := range horizon.Estimates {
				pdf.CellFormat(0, 8, cagrLine(horizon.HorizonYears, est), "", 1, "L", false, 0, "")
			}
			if horizon.AveragePct != nil {
				pdf.CellFormat(0, 8, fmt.Sprintf("Average %d-year CAGR across assets: %s%%",
					horizon.HorizonYears, FormatRate(*horizon.AveragePct)), "", 1, "L", false, 0, "")
			} else if horizon.Notice != "" {
				pdf.CellFormat(0, 8, horizon.Notice, "", 1, "L", false, 0, "")
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		if s.logger != nil {
			s.logger.Error().Err(err).Msg("Failed to generate PDF output")
		}
		return nil, fmt.Errorf("failed to generate PDF output: %w", err)
	}

	if s.logger != nil {
		s.logger.Debug().Int("pdf_size", buf.Len()).Msg("Report generated")
	}

	return buf.Bytes(), nil
}

// planBlock renders the fixed plan sentence template.
func planBlock(plan *models.InvestmentPlan) string {
	return fmt.Sprintf("Target Corpus: Rs %s\nInvest Rs %s per month for %d years at %s%% expected return.",
		FormatAmount(int64(math.Round(plan.Goal.TargetAmount))),
		FormatAmount(plan.Monthly),
		plan.Goal.DurationYears,
		FormatRate(plan.Goal.AnnualRatePercent))
}

// cagrLine renders one asset estimate, including absent values.
func cagrLine(horizonYears int, est models.CagrEstimate) string {
	if est.Percent == nil {
		return fmt.Sprintf("- %s (%d year): not available", est.Asset, horizonYears)
	}
	return fmt.Sprintf("- %s (%d year): %s%%", est.Asset, horizonYears, FormatRate(*est.Percent))
}

// FormatAmount formats a whole currency amount with comma thousands
// separators. The "Rs" prefix is applied by callers; the rupee sign is
// outside the cp1252 repertoire of the core PDF fonts.
func FormatAmount(n int64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var out []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// FormatRate formats a percentage rate, trimming trailing zeros
// (12.0 -> "12", 12.5 -> "12.5").
func FormatRate(rate float64) string {
	return fmt.Sprintf("%g", rate)
}
