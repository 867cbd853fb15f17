package render

import (
	"fmt"
	"strings"
)

const (
	minRingSize     = 64
	maxRingSize     = 1024
	defaultRingSize = 256
)

// RingParams are already-validated inputs for the avatar ring. Use
// NormalizeRing to build them from raw values.
type RingParams struct {
	Size       int
	Width      int
	ColorStart string
	ColorEnd   string
}

// NormalizeRing clamps size and stroke width into their legal ranges and
// fills defaults for the gradient colors.
func NormalizeRing(size, width int, colorStart, colorEnd string) (RingParams, error) {
	if size <= 0 {
		size = defaultRingSize
	}
	if size < minRingSize {
		size = minRingSize
	}
	if size > maxRingSize {
		size = maxRingSize
	}

	if width <= 0 {
		width = size / 16
	}
	if width < 1 {
		width = 1
	}
	if width > size/4 {
		width = size / 4
	}

	start, err := ResolveColor(colorStart, "#007ec6")
	if err != nil {
		return RingParams{}, err
	}
	end, err := ResolveColor(colorEnd, "#8a2be2")
	if err != nil {
		return RingParams{}, err
	}

	return RingParams{Size: size, Width: width, ColorStart: start, ColorEnd: end}, nil
}

// Ring renders a decorative gradient circle sized for avatar overlays.
func Ring(p RingParams) []byte {
	radius := (p.Size - p.Width) / 2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, p.Size, p.Size, p.Size, p.Size)
	b.WriteString(`<defs><linearGradient id="g" x1="0%" y1="0%" x2="100%" y2="100%">`)
	fmt.Fprintf(&b, `<stop offset="0%%" stop-color="%s"/>`, p.ColorStart)
	fmt.Fprintf(&b, `<stop offset="100%%" stop-color="%s"/>`, p.ColorEnd)
	b.WriteString(`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="url(#g)" stroke-width="%d"/>`,
		p.Size/2, p.Size/2, radius, p.Width)
	b.WriteString(`</svg>`)
	return []byte(b.String())
}
