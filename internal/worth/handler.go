package worth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vpsworth/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RateResolver interface {
	Resolve(ctx context.Context, from, to string) (domain.RateResult, error)
}

type CurrencyValidator interface {
	ValidateCurrency(code string) error
}

type Handler struct {
	validator CurrencyValidator
	resolver  RateResolver
	now       func() time.Time
}

func NewHandler(validator CurrencyValidator, resolver RateResolver) *Handler {
	return &Handler{validator: validator, resolver: resolver, now: time.Now}
}

type ConvertedValue struct {
	Currency  string          `json:"currency"`
	Remaining decimal.Decimal `json:"remainingValue"`
	Rate      float64         `json:"rate"`
	Source    string          `json:"source"`
	FromCache bool            `json:"fromCache"`
}

type ValueData struct {
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Cycle         Cycle           `json:"cycle"`
	CycleDays     int             `json:"cycleDays"`
	Expiry        string          `json:"expiry"`
	RemainingDays int             `json:"remainingDays"`
	PerDay        decimal.Decimal `json:"perDay"`
	Remaining     decimal.Decimal `json:"remainingValue"`
	Converted     *ConvertedValue `json:"converted,omitempty"`
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// ValueRequest holds the parsed and validated query parameters.
type ValueRequest struct {
	Price    decimal.Decimal
	Currency string
	Cycle    Cycle
	Expiry   time.Time
	Target   string
}

// ParseRequest validates the shared query-parameter set of the value and
// value-badge endpoints.
func ParseRequest(q url.Values, validator CurrencyValidator) (ValueRequest, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(q.Get("price")))
	if err != nil {
		return ValueRequest{}, errors.New("price must be a decimal number")
	}

	currency := strings.ToUpper(strings.TrimSpace(q.Get("currency")))
	if err = validator.ValidateCurrency(currency); err != nil {
		return ValueRequest{}, err
	}

	cycle, err := ParseCycle(strings.TrimSpace(q.Get("cycle")))
	if err != nil {
		return ValueRequest{}, err
	}

	expiry, err := time.Parse("2006-01-02", strings.TrimSpace(q.Get("expiry")))
	if err != nil {
		return ValueRequest{}, errors.New("expiry must be a date like 2026-01-31")
	}

	target := strings.ToUpper(strings.TrimSpace(q.Get("to")))
	if target == "" {
		target = currency
	} else if err = validator.ValidateCurrency(target); err != nil {
		return ValueRequest{}, err
	}

	return ValueRequest{Price: price, Currency: currency, Cycle: cycle, Expiry: expiry, Target: target}, nil
}

// Evaluate computes the valuation and converts it when a different target
// currency was requested. The returned status is the HTTP code to use on
// error.
func Evaluate(ctx context.Context, req ValueRequest, resolver RateResolver, now time.Time) (ValueData, int, error) {
	valuation, err := Calculate(req.Price, req.Cycle, req.Expiry, now)
	if err != nil {
		return ValueData{}, http.StatusBadRequest, err
	}

	data := ValueData{
		Price:         req.Price,
		Currency:      req.Currency,
		Cycle:         req.Cycle,
		CycleDays:     valuation.CycleDays,
		Expiry:        req.Expiry.Format("2006-01-02"),
		RemainingDays: valuation.RemainingDays,
		PerDay:        valuation.PerDay,
		Remaining:     valuation.Remaining,
	}

	if req.Target == req.Currency {
		return data, http.StatusOK, nil
	}

	res, err := resolver.Resolve(ctx, req.Currency, req.Target)
	if err != nil {
		if !errors.Is(err, domain.ErrNoRateAvailable) {
			logrus.WithError(err).WithFields(logrus.Fields{
				"from": req.Currency,
				"to":   req.Target,
			}).Error("Conversion failed")
		}
		return ValueData{}, http.StatusInternalServerError, err
	}
	data.Converted = &ConvertedValue{
		Currency:  req.Target,
		Remaining: Convert(valuation.Remaining, res.Rate),
		Rate:      res.Rate,
		Source:    res.Source,
		FromCache: res.Degraded,
	}
	return data, http.StatusOK, nil
}

// GetValue godoc
// @Summary Remaining value of a prepaid subscription
// @Description Prorate the plan price over its billing cycle and optionally convert the remainder
// @Tags Worth
// @Produce json
// @Param price query string true "Plan price"
// @Param currency query string true "Plan currency code"
// @Param cycle query string true "Billing cycle" Enums(month, quarter, halfyear, year, 2years, 3years)
// @Param expiry query string true "Expiry date (YYYY-MM-DD)"
// @Param to query string false "Conversion target currency"
// @Success 200 {object} ValueData
// @Failure 400 {object} envelope
// @Failure 500 {object} envelope
// @Router /api/value [get]
func (h *Handler) GetValue(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.URL.Query(), h.validator)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
		return
	}

	data, status, err := Evaluate(r.Context(), req, h.resolver, h.now())
	if err != nil {
		writeJSON(w, status, envelope{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}
