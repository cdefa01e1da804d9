package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorSuccess = lipgloss.Color("#22C55E")
	colorWarn    = lipgloss.Color("#F97316")
	colorError   = lipgloss.Color("#F43F5E")
	colorDim     = lipgloss.Color("#94A3B8")
	colorBarFill = lipgloss.Color("#14B8A6")
	colorBarRest = lipgloss.Color("#334155")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	passStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarn)
	failStyle    = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// styler applies terminal styles only when enabled, so plain output stays
// byte-for-byte stable.
type styler struct {
	on bool
}

func (s styler) render(st lipgloss.Style, text string) string {
	if !s.on {
		return text
	}
	return st.Render(text)
}

func (s styler) heading(text string) string { return s.render(headingStyle, "=== "+text+" ===") }
func (s styler) pass(text string) string    { return s.render(passStyle, text) }
func (s styler) warn(text string) string    { return s.render(warnStyle, text) }
func (s styler) fail(text string) string    { return s.render(failStyle, text) }
func (s styler) dim(text string) string     { return s.render(dimStyle, text) }

// rate styles a percentage by how healthy it is.
func (s styler) rate(pct float64) string {
	text := fmt.Sprintf("%.1f%%", pct)
	switch {
	case pct >= 80:
		return s.pass(text)
	case pct >= 50:
		return s.warn(text)
	default:
		return s.fail(text)
	}
}

// bar draws a horizontal bar filled to pct percent.
func (s styler) bar(pct float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(float64(width) * pct / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	if !s.on {
		return "[" + strings.Repeat("#", filled) + strings.Repeat(".", empty) + "]"
	}
	return lipgloss.NewStyle().Background(colorBarFill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(colorBarRest).Render(strings.Repeat(" ", empty))
}
