package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"vpsworth/internal/domain"
)

type RateResolver interface {
	Resolve(ctx context.Context, from, to string) (domain.RateResult, error)
}

type CurrencyValidator interface {
	ValidateCurrencyPair(from, to string) error
	SupportedCodes() []string
}

type Handler struct {
	validator CurrencyValidator
	resolver  RateResolver
}

func NewRateHandler(validator CurrencyValidator, resolver RateResolver) *Handler {
	return &Handler{validator: validator, resolver: resolver}
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: errorMsg})
}
