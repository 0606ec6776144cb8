package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/advisor/internal/services/cagr"
	"github.com/ternarybob/advisor/internal/services/narrator"
	"github.com/ternarybob/advisor/internal/services/planner"
	"github.com/ternarybob/advisor/internal/services/portfolio"
)

func newTestAdviceHandler() *AdviceHandler {
	logger := arbor.NewLogger()
	return NewAdviceHandler(
		portfolio.NewService(logger),
		planner.NewService(logger),
		narrator.NewService(nil, logger), // no chat client: narration degrades to fallback
		cagr.NewStaticEstimator(logger),
		[]int{1, 3, 5},
		logger,
	)
}

func validAdviceRequest() AdviceRequest {
	return AdviceRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Age:             30,
		MonthlyIncome:   50000,
		Risk:            "Medium",
		Goal:            "Retirement",
		AnnualReturnPct: 12.0,
		DurationYears:   10,
		TargetCorpus:    4_500_000,
	}
}

func postAdvice(t *testing.T, h *AdviceHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/advice", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h.AdviceHandler(rec, req)
	return rec
}

func TestAdviceHandler(t *testing.T) {
	h := newTestAdviceHandler()

	rec := postAdvice(t, h, validAdviceRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AdviceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.SessionID)

	// Medium risk allocation
	assert.Equal(t, 50, resp.Allocation.Equity)
	assert.Equal(t, 40, resp.Allocation.Debt)
	assert.Equal(t, 10, resp.Allocation.Gold)
	assert.Equal(t, 100, resp.Allocation.Total())

	// Without a chat client the narration is the fixed fallback.
	assert.True(t, resp.Narration.Fallback)
	assert.Equal(t, narrator.FallbackText, resp.Narration.Text)

	require.NotNil(t, resp.Plan)
	assert.Equal(t, int64(19562), resp.Plan.Monthly)
	assert.Equal(t, "To reach Rs 4,500,000 in 10 years at 12% return, invest Rs 19,562/month.", resp.PlanSummary)

	require.Len(t, resp.Cagr, 3)
	assert.Equal(t, 1, resp.Cagr[0].HorizonYears)
	assert.Equal(t, 5, resp.Cagr[2].HorizonYears)
}

func TestAdviceHandlerValidation(t *testing.T) {
	h := newTestAdviceHandler()

	tests := []struct {
		name   string
		mutate func(*AdviceRequest)
	}{
		{"age below minimum", func(r *AdviceRequest) { r.Age = 17 }},
		{"age above maximum", func(r *AdviceRequest) { r.Age = 71 }},
		{"unknown risk", func(r *AdviceRequest) { r.Risk = "Aggressive" }},
		{"return below range", func(r *AdviceRequest) { r.AnnualReturnPct = 5 }},
		{"return above range", func(r *AdviceRequest) { r.AnnualReturnPct = 16 }},
		{"duration too long", func(r *AdviceRequest) { r.DurationYears = 41 }},
		{"missing goal", func(r *AdviceRequest) { r.Goal = "" }},
		{"zero target", func(r *AdviceRequest) { r.TargetCorpus = 0 }},
		{"bad email", func(r *AdviceRequest) { r.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAdviceRequest()
			tt.mutate(&req)

			rec := postAdvice(t, h, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAdviceHandlerRejectsBadJSON(t *testing.T) {
	h := newTestAdviceHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/advice", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.AdviceHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdviceHandlerRejectsGet(t *testing.T) {
	h := newTestAdviceHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/advice", nil)
	rec := httptest.NewRecorder()
	h.AdviceHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
