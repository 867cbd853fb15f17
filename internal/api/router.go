package api

import (
	_ "vpsworth/docs"
	"vpsworth/internal/qr"
	ratehandler "vpsworth/internal/rate/handler"
	"vpsworth/internal/render"
	"vpsworth/internal/worth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(
	rateHandler *ratehandler.Handler,
	worthHandler *worth.Handler,
	renderHandler *render.Handler,
	qrHandler *qr.Handler,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/exchange-rate", rateHandler.GetExchangeRate)
	router.Get("/api/currencies", rateHandler.GetSupportedCodes)
	router.Get("/api/value", worthHandler.GetValue)
	router.Get("/api/badge", renderHandler.GetBadge)
	router.Get("/api/badge/value", renderHandler.GetValueBadge)
	router.Get("/api/ring", renderHandler.GetRing)
	router.Get("/api/qrcode", qrHandler.GetQRCode)
	return router
}
