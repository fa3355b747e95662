package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	generateestimate "fireapi/http-server/estimate/generate"
	reportestimate "fireapi/http-server/estimate/report"
	"fireapi/http-server/hub"
	cryptopredict "fireapi/http-server/predict/crypto"
	sportspredict "fireapi/http-server/predict/sports"
	"fireapi/internal/config"
	"fireapi/internal/middleware/guard"
	"fireapi/internal/registry"
	"fireapi/internal/service/estimate"
	"fireapi/internal/service/predict"
)

func routes(cfg config.Config, log *slog.Logger, reg *registry.Registry, engine *predict.Engine, estimator *estimate.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(guard.Recoverer(log, "intelligence temporarily unavailable"))

	router.Get("/", hub.Home(log, reg, cfg.Version))
	router.Get("/services", hub.Services(log, reg))
	router.Get("/health", hub.Health(log, reg, cfg.Version))

	router.Post("/sports/predict", sportspredict.Predict(log, engine))
	router.Post("/crypto/predict", cryptopredict.Predict(log, engine))

	router.Post("/estimate", generateestimate.Estimate(log, estimator))
	router.Post("/estimate/report", reportestimate.Excel(log, estimator))

	return router
}
