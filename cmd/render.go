package cmd

import (
	"fmt"
	"strings"

	"github.com/brandkit/api/palette"
	"github.com/charmbracelet/lipgloss"
)

var (
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")).Padding(0, 1)
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")).Padding(0, 1)
)

// swatch paints label on the color itself, in whichever of black or white
// reads better.
func swatch(v palette.ColorValues, acc palette.Accessibility, label string) string {
	fg := "#ffffff"
	if acc.ReadableOn == palette.OnBlack {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(v.Hex)).
		Foreground(lipgloss.Color(fg)).
		Width(12).
		Render(label)
}

func badge(ok bool, label string) string {
	if ok {
		return passStyle.Render(label)
	}
	return missStyle.Render(label)
}

func badges(acc palette.Accessibility) string {
	return strings.Join([]string{
		badge(acc.WCAGAALarge, "AA large"),
		badge(acc.WCAGAANormal, "AA"),
		badge(acc.WCAGAAA, "AAA"),
	}, " ")
}

func contrastLine(acc palette.Accessibility) string {
	return mutedStyle.Render(fmt.Sprintf("%5.2f:1 on white  %5.2f:1 on black", acc.ContrastWithWhite, acc.ContrastWithBlack))
}
