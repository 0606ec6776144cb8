// Package models defines the domain types shared across advisor services.
package models

import "fmt"

// RiskProfile is the user-selected risk tolerance tier.
type RiskProfile string

const (
	RiskLow    RiskProfile = "Low"
	RiskMedium RiskProfile = "Medium"
	RiskHigh   RiskProfile = "High"
)

// ParseRiskProfile validates a raw risk string against the closed enumeration.
func ParseRiskProfile(s string) (RiskProfile, bool) {
	switch RiskProfile(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskProfile(s), true
	default:
		return "", false
	}
}

// AssetClass identifies one of the three portfolio asset classes.
type AssetClass string

const (
	AssetEquity AssetClass = "Equity"
	AssetDebt   AssetClass = "Debt"
	AssetGold   AssetClass = "Gold"
)

// AssetClasses returns the asset classes in display order.
func AssetClasses() []AssetClass {
	return []AssetClass{AssetEquity, AssetDebt, AssetGold}
}

// Allocation is a fixed percentage split across the three asset classes.
// The struct keys the closed enumeration so every tier assignment covers
// all classes at compile time.
type Allocation struct {
	Equity int `json:"equity"`
	Debt   int `json:"debt"`
	Gold   int `json:"gold"`
}

// Total returns the sum of the allocation percentages. A valid allocation
// always totals 100.
func (a Allocation) Total() int {
	return a.Equity + a.Debt + a.Gold
}

// AllocationItem is one asset/percentage pair in display order.
type AllocationItem struct {
	Asset   AssetClass `json:"asset"`
	Percent int        `json:"percent"`
}

// Items returns the allocation as an ordered slice for rendering.
func (a Allocation) Items() []AllocationItem {
	return []AllocationItem{
		{Asset: AssetEquity, Percent: a.Equity},
		{Asset: AssetDebt, Percent: a.Debt},
		{Asset: AssetGold, Percent: a.Gold},
	}
}

// InvestmentGoal is the input to the monthly investment plan calculation.
type InvestmentGoal struct {
	TargetAmount      float64 `json:"target_amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	DurationYears     int     `json:"duration_years"`
}

// InvestmentPlan is the derived savings plan. Monthly is rounded to the
// nearest whole currency unit, half away from zero.
type InvestmentPlan struct {
	Goal    InvestmentGoal `json:"goal"`
	Monthly int64          `json:"monthly"`
}

// CagrEstimate is the CAGR for one asset class over a horizon. Percent is
// nil when the underlying data was unavailable, with Notice explaining why.
type CagrEstimate struct {
	Asset   AssetClass `json:"asset"`
	Percent *float64   `json:"percent,omitempty"`
	Notice  string     `json:"notice,omitempty"`
}

// CagrReport holds per-asset CAGR estimates for a single horizon plus the
// arithmetic mean of the values that could be computed.
type CagrReport struct {
	HorizonYears int            `json:"horizon_years"`
	Estimates    []CagrEstimate `json:"estimates"`
	AveragePct   *float64       `json:"average_pct,omitempty"`
	Notice       string         `json:"notice,omitempty"`
}

// Narration is the advisor explanation result. Fallback is true when the
// text-generation call failed and Text carries the fixed apology string;
// Notice then holds a human-readable failure reason.
type Narration struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
	Notice   string `json:"notice,omitempty"`
}

// Profile captures the user inputs collected by the presentation shell.
type Profile struct {
	Name          string      `json:"name"`
	Age           int         `json:"age"`
	MonthlyIncome int64       `json:"monthly_income"`
	Risk          RiskProfile `json:"risk"`
	Goal          string      `json:"goal"`
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (age %d, %s risk)", p.Name, p.Age, p.Risk)
}

// ReportData aggregates everything the PDF report renders. Plan and Cagr
// are optional; the report omits those sections when absent.
type ReportData struct {
	Profile     Profile
	Allocation  Allocation
	Explanation string
	Plan        *InvestmentPlan
	Cagr        []CagrReport
}
