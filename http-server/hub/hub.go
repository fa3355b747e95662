package hub

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"fireapi/internal/registry"
)

// Directory handlers for the hub itself: root summary, service directory and
// health snapshot. All of them are read-only views over the injected registry.

type HomeResponse struct {
	Name              string            `json:"name"`
	Version           string            `json:"version"`
	Description       string            `json:"description"`
	Architecture      string            `json:"architecture"`
	Ecosystem         EcosystemSummary  `json:"ecosystem"`
	Endpoints         map[string]string `json:"endpoints"`
	CommunicationFlow []string          `json:"communication_flow"`
	Documentation     string            `json:"documentation"`
	Timestamp         string            `json:"timestamp"`
}

type EcosystemSummary struct {
	TotalServices       int      `json:"total_services"`
	AvailableServices   []string `json:"available_services"`
	OperationalServices int      `json:"operational_services"`
	PlannedServices     int      `json:"planned_services"`
}

func Home(log *slog.Logger, reg *registry.Registry, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tally := reg.Tally()

		render.JSON(w, r, HomeResponse{
			Name:         "FireAPI - Central Intelligence Hub",
			Version:      version,
			Description:  "Central hub for Fire Ventures Enterprise ecosystem",
			Architecture: "Hub and Spoke Model - All apps communicate through FireAPI",
			Ecosystem: EcosystemSummary{
				TotalServices:       tally.Total,
				AvailableServices:   reg.Names(),
				OperationalServices: tally.Live,
				PlannedServices:     tally.Planned,
			},
			Endpoints: map[string]string{
				"sports_intelligence": "/sports/predict (POST)",
				"crypto_intelligence": "/crypto/predict (POST)",
				"estimate_engine":     "/estimate (POST)",
				"estimate_report":     "/estimate/report (POST)",
				"service_directory":   "/services (GET)",
				"health_check":        "/health (GET)",
			},
			CommunicationFlow: []string{
				"1. Apps make requests to FireAPI",
				"2. FireAPI processes with central intelligence",
				"3. FireAPI returns enriched data to apps",
				"4. Apps display results to users",
			},
			Documentation: "https://tgwbkzua.gensparkspace.com/",
			Timestamp:     now(),
		})
	}
}

type ServicesResponse struct {
	FireEcosystem map[string]registry.Service `json:"fire_ecosystem"`
	TotalServices int                         `json:"total_services"`
	CentralHub    string                      `json:"central_hub"`
	Architecture  string                      `json:"architecture"`
	ServiceStatus map[string]string           `json:"service_status"`
	Timestamp     string                      `json:"timestamp"`
}

func Services(log *slog.Logger, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ServicesResponse{
			FireEcosystem: reg.Services(),
			TotalServices: reg.Len(),
			CentralHub:    "FireAPI coordinates all intelligence",
			Architecture:  "Microservices communicating through central hub",
			ServiceStatus: reg.Statuses(),
			Timestamp:     now(),
		})
	}
}

type HealthResponse struct {
	Status    string      `json:"fireapi_status"`
	Timestamp string      `json:"timestamp"`
	Hub       string      `json:"central_hub"`
	Version   string      `json:"version"`
	Ecosystem HealthTally `json:"ecosystem"`
	Modules   []string    `json:"intelligence_modules"`
}

type HealthTally struct {
	TotalServices   int `json:"total_services"`
	LiveServices    int `json:"live_services"`
	PlannedServices int `json:"planned_services"`
}

func Health(log *slog.Logger, reg *registry.Registry, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tally := reg.Tally()

		render.JSON(w, r, HealthResponse{
			Status:    "healthy",
			Timestamp: now(),
			Hub:       "operational",
			Version:   version,
			Ecosystem: HealthTally{
				TotalServices:   tally.Total,
				LiveServices:    tally.Live,
				PlannedServices: tally.Planned,
			},
			Modules: []string{
				"sports_prediction",
				"crypto_prediction",
				"estimate_generation",
			},
		})
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
