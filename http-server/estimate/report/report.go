package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"fireapi/http-server/estimate/generate"
	"fireapi/internal/service/classify"
	"fireapi/internal/service/estimate"
	reportsvc "fireapi/internal/service/report"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Estimator interface {
	Compute(p classify.Params) (*estimate.Estimate, error)
}

// Excel serves the same estimate as POST /estimate but rendered as an xlsx
// workbook attachment.
func Excel(log *slog.Logger, svc Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.estimate.report.Excel"

		var req generate.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Invalid request body")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, generate.ErrorResponse{Error: "invalid JSON body"})
			return
		}

		params := req.ResolveParams()

		est, err := svc.Compute(params)
		if err != nil {
			var invalid *estimate.InvalidParameterError
			if errors.As(err, &invalid) {
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, generate.ErrorResponse{Error: invalid.Error()})
				return
			}

			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to compute estimate")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, generate.ErrorResponse{Error: "estimate engine temporarily unavailable"})
			return
		}

		workbook, err := reportsvc.Excel(params, est)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Failed to render workbook")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, generate.ErrorResponse{Error: "report generation temporarily unavailable"})
			return
		}

		filename := fmt.Sprintf("estimate_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
		w.Header().Set("Content-Type", contentTypeXLSX)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write(workbook)
	}
}
