package render

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidColor = errors.New("color must be a palette name or hex like #4c1")

// palette mirrors the common badge color names.
var palette = map[string]string{
	"brightgreen": "#4c1",
	"green":       "#97ca00",
	"yellowgreen": "#a4a61d",
	"yellow":      "#dfb317",
	"orange":      "#fe7d37",
	"red":         "#e05d44",
	"blue":        "#007ec6",
	"lightgrey":   "#9f9f9f",
	"gray":        "#555",
	"purple":      "#8a2be2",
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ResolveColor maps a user-supplied color to a hex value, falling back to
// def when the input is empty.
func ResolveColor(input, def string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(input))
	if c == "" {
		return def, nil
	}
	if hex, ok := palette[c]; ok {
		return hex, nil
	}
	if hexColorRe.MatchString(c) {
		return c, nil
	}
	return "", ErrInvalidColor
}
