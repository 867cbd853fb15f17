package handler

import (
	"net/http"
)

type SupportedCodesData struct {
	Codes []string `json:"codes" example:"USD,EUR,JPY"`
}

// GetSupportedCodes godoc
// @Summary List supported currencies
// @Description Retrieve all currency codes accepted by the exchange-rate endpoint
// @Tags Rates
// @Produce json
// @Success 200 {object} SupportedCodesData
// @Router /api/currencies [get]
func (h *Handler) GetSupportedCodes(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, SupportedCodesData{
		Codes: h.validator.SupportedCodes(),
	})
}
