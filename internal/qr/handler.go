package qr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// GetQRCode godoc
// @Summary Generate a QR code
// @Tags Render
// @Produce image/png
// @Param text query string true "Content to encode"
// @Param size query int false "Edge length in pixels (64-1024)"
// @Router /api/qrcode [get]
func (h *Handler) GetQRCode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	size, _ := strconv.Atoi(q.Get("size"))

	data, err := Generate(q.Get("text"), size)
	if err != nil {
		if errors.Is(err, ErrTextRequired) || errors.Is(err, ErrTextTooLong) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).Error("QR generation failed")
		writeError(w, http.StatusInternalServerError, "failed to generate qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": errorMsg})
}
