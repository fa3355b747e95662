package crypto

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
	Crypto(coin, timeframe string) predict.CryptoPrediction
}

type Request struct {
	Coin      string `json:"coin"`
	Timeframe string `json:"timeframe"`
	AppID     string `json:"app_id"`
	UserID    string `json:"user_id"`
}

type Response struct {
	predict.CryptoPrediction
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Predict(log *slog.Logger, engine Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.predict.crypto.Predict"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("Invalid request body")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ErrorResponse{Error: "invalid JSON body"})
			return
		}

		coin := strings.ToLower(strings.TrimSpace(req.Coin))
		if coin == "" {
			coin = "bitcoin"
		}
		if req.Timeframe == "" {
			req.Timeframe = "24h"
		}
		if req.AppID == "" {
			req.AppID = "unknown"
		}
		if req.UserID == "" {
			req.UserID = "anonymous"
		}

		log.With(
			slog.String("op", op),
			slog.String("app_id", req.AppID),
			slog.String("user_id", req.UserID),
		).Info("Crypto prediction", slog.String("coin", coin), slog.String("timeframe", req.Timeframe))

		render.JSON(w, r, Response{
			CryptoPrediction: engine.Crypto(coin, req.Timeframe),
			Timestamp:        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
