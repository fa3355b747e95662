package generate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"fireapi/internal/service/classify"
	"fireapi/internal/service/estimate"
)

type Estimator interface {
	Compute(p classify.Params) (*estimate.Estimate, error)
}

// Request accepts either a free-form description, explicit parameters, or a
// mix: explicit fields override whatever the classifier derives.
type Request struct {
	Description string `json:"description"`
	KitchenSize string `json:"kitchen_size"`
	Scope       string `json:"scope"`
	QualityTier string `json:"quality_tier"`
}

type Response struct {
	EstimateID string              `json:"estimate_id"`
	Parameters classify.Params     `json:"parameters"`
	LineItems  []estimate.LineItem `json:"line_items"`
	Totals     estimate.Totals     `json:"totals"`
	Timestamp  string              `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ResolveParams merges the classifier output for the description with the
// explicit overrides from the request.
func (req Request) ResolveParams() classify.Params {
	p := classify.Classify(req.Description)
	if req.KitchenSize != "" {
		p.Size = req.KitchenSize
	}
	if req.Scope != "" {
		p.Scope = req.Scope
	}
	if req.QualityTier != "" {
		p.Quality = req.QualityTier
	}
	return p
}

func (req Request) empty() bool {
	return req.Description == "" && req.KitchenSize == "" && req.Scope == "" && req.QualityTier == ""
}

func Estimate(log *slog.Logger, svc Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.estimate.generate.Estimate"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Invalid request body")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "invalid JSON body"})
			return
		}

		if req.empty() {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "description or kitchen_size/scope/quality_tier is required"})
			return
		}

		params := req.ResolveParams()

		est, err := svc.Compute(params)
		if err != nil {
			var invalid *estimate.InvalidParameterError
			if errors.As(err, &invalid) {
				log.With(slog.String("op", op)).Warn("Invalid estimate parameter", slog.String("error", invalid.Error()))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, ErrorResponse{Error: invalid.Error()})
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to compute estimate")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, ErrorResponse{Error: "estimate engine temporarily unavailable"})
			return
		}

		log.With(slog.String("op", op)).Info("Estimate generated",
			slog.String("size", params.Size),
			slog.String("scope", params.Scope),
			slog.String("quality", params.Quality),
			slog.Float64("total_cost", est.Totals.TotalCost),
		)

		render.JSON(w, r, Response{
			EstimateID: uuid.NewString(),
			Parameters: params,
			LineItems:  est.LineItems,
			Totals:     est.Totals,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		})
	}
}
