package hub

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireapi/internal/registry"
)

func get(t *testing.T, handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHome(t *testing.T) {
	rr := get(t, Home(slog.Default(), registry.New(), "2.0.0"), "/")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp HomeResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Equal(t, "FireAPI - Central Intelligence Hub", resp.Name)
	assert.Equal(t, "2.0.0", resp.Version)
	assert.Equal(t, 7, resp.Ecosystem.TotalServices)
	assert.Contains(t, resp.Ecosystem.AvailableServices, "firecontractor")
	assert.Contains(t, resp.Endpoints, "sports_intelligence")
	assert.Contains(t, resp.Endpoints, "estimate_engine")
	assert.Len(t, resp.CommunicationFlow, 4)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestServices(t *testing.T) {
	rr := get(t, Services(slog.Default(), registry.New()), "/services")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ServicesResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Equal(t, 7, resp.TotalServices)
	assert.Len(t, resp.FireEcosystem, 7)
	assert.Equal(t, registry.StatusPlanned, resp.ServiceStatus["firebet"])
	assert.NotEmpty(t, resp.FireEcosystem["firecrypto"].URL)
}

func TestHealth(t *testing.T) {
	rr := get(t, Health(slog.Default(), registry.New(), "2.0.0"), "/health")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "operational", resp.Hub)
	assert.Equal(t, 7, resp.Ecosystem.TotalServices)
	assert.Contains(t, resp.Modules, "sports_prediction")
	assert.Contains(t, resp.Modules, "estimate_generation")

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}
