package sports

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"fireapi/internal/service/predict"
)

type Predictor interface {
	Sports(sport, team1, team2 string) predict.SportsPrediction
}

type Request struct {
	Sport  string `json:"sport"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	AppID  string `json:"app_id"`
	UserID string `json:"user_id"`
}

type Response struct {
	predict.SportsPrediction
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Predict(log *slog.Logger, engine Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.predict.sports.Predict"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Invalid request body")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "invalid JSON body"})
			return
		}

		if req.Sport == "" {
			req.Sport = "nfl"
		}
		if req.AppID == "" {
			req.AppID = "unknown"
		}
		if req.UserID == "" {
			req.UserID = "anonymous"
		}

		team1 := strings.ToLower(strings.TrimSpace(req.Team1))
		team2 := strings.ToLower(strings.TrimSpace(req.Team2))
		if team1 == "" || team2 == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "Both team1 and team2 are required"})
			return
		}

		log.With(
			slog.String("op", op),
			slog.String("app_id", req.AppID),
			slog.String("user_id", req.UserID),
		).Info("Sports prediction", slog.String("matchup", team1+" vs "+team2))

		render.JSON(w, r, Response{
			SportsPrediction: engine.Sports(req.Sport, team1, team2),
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
