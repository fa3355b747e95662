package generate

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fireapi/internal/service/classify"
	"fireapi/internal/service/estimate"
)

type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) Compute(p classify.Params) (*estimate.Estimate, error) {
	args := m.Called(p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*estimate.Estimate), args.Error(1)
}

func doRequest(t *testing.T, svc Estimator, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := Estimate(slog.Default(), svc)
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func sampleEstimate() *estimate.Estimate {
	return &estimate.Estimate{
		LineItems: []estimate.LineItem{
			{Category: estimate.CategoryLabor, Phase: "Prep", Description: "demo", Hours: 4, Rate: 75, Cost: 300},
		},
		Totals: estimate.Totals{RawHours: 4, Complexity: 1, AdjustedHours: 4, LaborCost: 300, TotalCost: 300},
	}
}

func TestEstimate_FromDescription(t *testing.T) {
	svc := new(MockEstimator)
	svc.On("Compute", classify.Params{Size: "small", Scope: "standard", Quality: "mid_range"}).
		Return(sampleEstimate(), nil)

	rr := doRequest(t, svc, `{"description": "small kitchen remodel"}`)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.NotEmpty(t, resp.EstimateID)
	assert.Equal(t, "small", resp.Parameters.Size)
	assert.Len(t, resp.LineItems, 1)
	assert.InDelta(t, 300, resp.Totals.TotalCost, 1e-9)
	assert.NotEmpty(t, resp.Timestamp)

	svc.AssertExpectations(t)
}

// Explicit parameters beat whatever the classifier derives.
func TestEstimate_ExplicitParamsOverrideDescription(t *testing.T) {
	svc := new(MockEstimator)
	svc.On("Compute", classify.Params{Size: "xl", Scope: "standard", Quality: "mid_range"}).
		Return(sampleEstimate(), nil)

	rr := doRequest(t, svc, `{"description": "small kitchen remodel", "kitchen_size": "xl"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestEstimate_EmptyRequestReturns400(t *testing.T) {
	svc := new(MockEstimator)

	rr := doRequest(t, svc, `{}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Compute")
}

func TestEstimate_InvalidJSONReturns400(t *testing.T) {
	rr := doRequest(t, new(MockEstimator), `{`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEstimate_UnknownParameterReturns422(t *testing.T) {
	svc := new(MockEstimator)
	svc.On("Compute", classify.Params{Size: "medium", Scope: "standard", Quality: "platinum"}).
		Return(nil, &estimate.InvalidParameterError{Kind: "quality_tier", Value: "platinum"})

	rr := doRequest(t, svc, `{"quality_tier": "platinum"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "quality_tier")
	assert.Contains(t, rr.Body.String(), "platinum")
}

func TestEstimate_InternalErrorIsRedacted(t *testing.T) {
	svc := new(MockEstimator)
	svc.On("Compute", mock.Anything).
		Return(nil, assert.AnError)

	rr := doRequest(t, svc, `{"description": "kitchen"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	assert.JSONEq(t, `{"error": "estimate engine temporarily unavailable"}`, rr.Body.String())
}

func TestResolveParams_DefaultsAndOverrides(t *testing.T) {
	req := Request{Description: "luxury small kitchen", Scope: "gut_renovation"}

	p := req.ResolveParams()

	assert.Equal(t, "small", p.Size)
	assert.Equal(t, "gut_renovation", p.Scope)
	assert.Equal(t, "luxury", p.Quality)
}
