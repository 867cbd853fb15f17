package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"vpsworth/internal/domain"

	"github.com/sirupsen/logrus"
)

type ExchangeRateData struct {
	Base      string  `json:"base"`
	Target    string  `json:"target"`
	Rate      float64 `json:"rate"`
	Timestamp string  `json:"timestamp" example:"2025-03-01T12:00:00Z"`
	Source    string  `json:"source"`
	FromCache bool    `json:"fromCache"`
}

// GetExchangeRate godoc
// @Summary Resolve an exchange rate
// @Description Resolve the rate for a currency pair via live providers with cached fallback
// @Tags Rates
// @Produce json
// @Param from query string true "Base currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} ExchangeRateData
// @Failure 400 {object} envelope
// @Failure 500 {object} envelope
// @Router /api/exchange-rate [get]
func (h *Handler) GetExchangeRate(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("from")))
	to := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("to")))

	if err := h.validator.ValidateCurrencyPair(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.resolver.Resolve(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrNoRateAvailable) {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		msg := "ups, couldn't resolve rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetExchangeRate", "from": from, "to": to}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeData(w, http.StatusOK, ExchangeRateData{
		Base:      from,
		Target:    to,
		Rate:      res.Rate,
		Timestamp: res.FetchedAt.UTC().Format(time.RFC3339),
		Source:    res.Source,
		FromCache: res.Degraded,
	})
}
