package render

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vpsworth/internal/worth"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	validator worth.CurrencyValidator
	resolver  worth.RateResolver
	now       func() time.Time
}

func NewHandler(validator worth.CurrencyValidator, resolver worth.RateResolver) *Handler {
	return &Handler{validator: validator, resolver: resolver, now: time.Now}
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": errorMsg})
}

// writeImage sends the SVG as-is or rasterized, depending on format.
func writeImage(w http.ResponseWriter, svg []byte, format string) {
	switch format {
	case "", "svg":
		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
	case "png":
		data, err := RasterizePNG(svg)
		if err != nil {
			logrus.WithError(err).Error("PNG rasterization failed")
			writeError(w, http.StatusInternalServerError, "failed to render png")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "format must be svg or png")
	}
}

// GetBadge godoc
// @Summary Render a status badge
// @Tags Render
// @Produce image/svg+xml
// @Param label query string false "Left cell text"
// @Param value query string true "Right cell text"
// @Param color query string false "Palette name or hex"
// @Param format query string false "svg or png"
// @Router /api/badge [get]
func (h *Handler) GetBadge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	value := strings.TrimSpace(q.Get("value"))
	if value == "" {
		writeError(w, http.StatusBadRequest, "value is required")
		return
	}
	label := strings.TrimSpace(q.Get("label"))
	if label == "" {
		label = "status"
	}
	color, err := ResolveColor(q.Get("color"), defaultColor)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeImage(w, Badge(label, value, color), q.Get("format"))
}

// GetValueBadge godoc
// @Summary Render the remaining-value badge
// @Description Same parameters as /api/value, rendered as a badge
// @Tags Render
// @Produce image/svg+xml
// @Param price query string true "Plan price"
// @Param currency query string true "Plan currency code"
// @Param cycle query string true "Billing cycle" Enums(month, quarter, halfyear, year, 2years, 3years)
// @Param expiry query string true "Expiry date (YYYY-MM-DD)"
// @Param to query string false "Conversion target currency"
// @Param label query string false "Left cell text"
// @Param color query string false "Palette name or hex"
// @Param format query string false "svg or png"
// @Router /api/badge/value [get]
func (h *Handler) GetValueBadge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req, err := worth.ParseRequest(q, h.validator)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	color, err := ResolveColor(q.Get("color"), defaultColor)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, status, err := worth.Evaluate(r.Context(), req, h.resolver, h.now())
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	value := fmt.Sprintf("%s %s", data.Remaining, data.Currency)
	if data.Converted != nil {
		value = fmt.Sprintf("%s %s", data.Converted.Remaining, data.Converted.Currency)
		// A rate served from a stale snapshot is marked so viewers can tell.
		if data.Converted.FromCache {
			value += " (stale)"
		}
	}
	label := strings.TrimSpace(q.Get("label"))
	if label == "" {
		label = "remaining value"
	}

	writeImage(w, Badge(label, value, color), q.Get("format"))
}

// GetRing godoc
// @Summary Render a decorative avatar ring
// @Tags Render
// @Produce image/svg+xml
// @Param size query int false "Edge length in pixels (64-1024)"
// @Param width query int false "Stroke width"
// @Param color query string false "Gradient start color"
// @Param color2 query string false "Gradient end color"
// @Param format query string false "svg or png"
// @Router /api/ring [get]
func (h *Handler) GetRing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	size, _ := strconv.Atoi(q.Get("size"))
	width, _ := strconv.Atoi(q.Get("width"))

	params, err := NormalizeRing(size, width, q.Get("color"), q.Get("color2"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeImage(w, Ring(params), q.Get("format"))
}
