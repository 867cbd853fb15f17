package worth

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositivePrice = errors.New("price must be positive")
	ErrExpiryInPast     = errors.New("expiry date is in the past")
)

// Cycle is a prepaid billing period.
type Cycle string

const (
	CycleMonth    Cycle = "month"
	CycleQuarter  Cycle = "quarter"
	CycleHalfYear Cycle = "halfyear"
	CycleYear     Cycle = "year"
	CycleTwoYears Cycle = "2years"
	CycleThree    Cycle = "3years"
)

var cycleDays = map[Cycle]int{
	CycleMonth:    31,
	CycleQuarter:  91,
	CycleHalfYear: 183,
	CycleYear:     365,
	CycleTwoYears: 730,
	CycleThree:    1095,
}

func (c Cycle) Days() int { return cycleDays[c] }

func ParseCycle(s string) (Cycle, error) {
	c := Cycle(s)
	if _, ok := cycleDays[c]; !ok {
		return "", fmt.Errorf("unknown billing cycle %q", s)
	}
	return c, nil
}

// Valuation is the remaining economic value of a prepaid subscription.
type Valuation struct {
	CycleDays     int
	RemainingDays int
	PerDay        decimal.Decimal
	Remaining     decimal.Decimal
}

// Calculate prorates price over the cycle. Remaining days are counted in
// whole days from now to expiry, rounded up, and clamped to the cycle length.
func Calculate(price decimal.Decimal, cycle Cycle, expiry time.Time, now time.Time) (Valuation, error) {
	if !price.IsPositive() {
		return Valuation{}, ErrNonPositivePrice
	}
	if !expiry.After(now) {
		return Valuation{}, ErrExpiryInPast
	}

	days := cycle.Days()
	remaining := int((expiry.Sub(now) + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	if remaining > days {
		remaining = days
	}

	daysDec := decimal.NewFromInt(int64(days))
	perDay := price.DivRound(daysDec, 4)
	value := price.Mul(decimal.NewFromInt(int64(remaining))).DivRound(daysDec, 2)

	return Valuation{
		CycleDays:     days,
		RemainingDays: remaining,
		PerDay:        perDay,
		Remaining:     value,
	}, nil
}

// Convert applies an exchange rate to a money amount, 2 decimal places.
func Convert(amount decimal.Decimal, rate float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(rate)).Round(2)
}
