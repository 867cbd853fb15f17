package render

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	badgeHeight   = 20
	badgeCharW    = 7 // rough Verdana 11px advance
	badgePad      = 10
	maxBadgeText  = 64
	defaultColor  = "#97ca00"
	badgeFontName = "Verdana,Geneva,DejaVu Sans,sans-serif"
)

// Badge renders a flat two-cell status badge as an SVG document.
func Badge(label, value, color string) []byte {
	label = clampText(label)
	value = clampText(value)

	labelW := textWidth(label)
	valueW := textWidth(value)
	totalW := labelW + valueW

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img">`, totalW, badgeHeight, totalW, badgeHeight)
	b.WriteString(`<linearGradient id="s" x2="0" y2="100%">` +
		`<stop offset="0" stop-color="#bbb" stop-opacity=".1"/>` +
		`<stop offset="1" stop-opacity=".1"/>` +
		`</linearGradient>`)
	fmt.Fprintf(&b, `<clipPath id="r"><rect width="%d" height="%d" rx="3" fill="#fff"/></clipPath>`, totalW, badgeHeight)
	b.WriteString(`<g clip-path="url(#r)">`)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#555"/>`, labelW, badgeHeight)
	fmt.Fprintf(&b, `<rect x="%d" width="%d" height="%d" fill="%s"/>`, labelW, valueW, badgeHeight, color)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#s)"/>`, totalW, badgeHeight)
	b.WriteString(`</g>`)
	fmt.Fprintf(&b, `<g fill="#fff" text-anchor="middle" font-family="%s" font-size="11">`, badgeFontName)
	fmt.Fprintf(&b, `<text x="%d" y="14">%s</text>`, labelW/2, escape(label))
	fmt.Fprintf(&b, `<text x="%d" y="14">%s</text>`, labelW+valueW/2, escape(value))
	b.WriteString(`</g></svg>`)
	return []byte(b.String())
}

func clampText(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxBadgeText {
		s = string(r[:maxBadgeText])
	}
	return s
}

func textWidth(s string) int {
	return len([]rune(s))*badgeCharW + badgePad
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
