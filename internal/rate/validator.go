package rate

import (
	"errors"
	"maps"
	"slices"
)

var (
	ErrFromRequired    = errors.New("from currency is required")
	ErrToRequired      = errors.New("to currency is required")
	ErrFromUnsupported = errors.New("from currency not supported")
	ErrToUnsupported   = errors.New("to currency not supported")
)

// SupportedCurrencies is the closed set of codes the service accepts.
var SupportedCurrencies = map[string]struct{}{
	"USD": {},
	"CNY": {},
	"EUR": {},
	"GBP": {},
	"JPY": {},
	"KRW": {},
}

type CurrencyValidator struct {
	supportedCodesSet map[string]struct{} // read only copy
	supportedCodesLst []string            // read only copy
}

// ValidateCurrencyPair checks both codes against the supported set. Identical
// codes are legal; the resolver answers them with the identity rate.
func (v *CurrencyValidator) ValidateCurrencyPair(from, to string) error {
	if from == "" {
		return ErrFromRequired
	}
	if to == "" {
		return ErrToRequired
	}
	if _, ok := v.supportedCodesSet[from]; !ok {
		return ErrFromUnsupported
	}
	if _, ok := v.supportedCodesSet[to]; !ok {
		return ErrToUnsupported
	}
	return nil
}

func (v *CurrencyValidator) ValidateCurrency(code string) error {
	if code == "" {
		return ErrFromRequired
	}
	if _, ok := v.supportedCodesSet[code]; !ok {
		return ErrFromUnsupported
	}
	return nil
}

func (v *CurrencyValidator) SupportedCodes() []string {
	return slices.Clone(v.supportedCodesLst)
}

func NewValidator(supportedCurrencies map[string]struct{}) *CurrencyValidator {
	codesSet := maps.Clone(supportedCurrencies)
	codesLst := slices.Collect(maps.Keys(codesSet))
	slices.Sort(codesLst)

	return &CurrencyValidator{
		supportedCodesSet: codesSet,
		supportedCodesLst: codesLst,
	}
}
