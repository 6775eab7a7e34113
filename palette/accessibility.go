package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// WCAG 2.x contrast thresholds. All comparisons are inclusive.
const (
	ContrastAALarge  = 3.0
	ContrastAANormal = 4.5
	ContrastAAA      = 7.0
)

// Background names the surface a step reads best on.
type Background string

const (
	OnWhite Background = "white"
	OnBlack Background = "black"
)

// Accessibility is the contrast report for one color.
type Accessibility struct {
	ContrastWithWhite float64    `json:"contrastWithWhite"`
	ContrastWithBlack float64    `json:"contrastWithBlack"`
	ReadableOn        Background `json:"readableOn,omitempty"`
	WCAGAANormal      bool       `json:"wcagAANormal"`
	WCAGAALarge       bool       `json:"wcagAALarge"`
	WCAGAAA           bool       `json:"wcagAAA"`
}

// CheckAccessibility reports the contrast of a hex color against pure white
// and pure black.
func CheckAccessibility(hex string) (Accessibility, error) {
	c, err := parseHex(hex)
	if err != nil {
		return Accessibility{}, err
	}
	return accessibilityOf(c), nil
}

// ContrastRatio returns the WCAG contrast ratio between two colors in any
// notation ParseColor accepts.
func ContrastRatio(a, b string) (float64, error) {
	va, err := ParseColor(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseColor(b)
	if err != nil {
		return 0, err
	}
	return truncateRatio(contrast(luminance(rgbColor(va.RGB)), luminance(rgbColor(vb.RGB)))), nil
}

// ScoreContrast builds the report from two contrast ratios. The WCAG flags
// are judged against whichever background gives the higher ratio.
func ScoreContrast(white, black float64) Accessibility {
	a := Accessibility{ContrastWithWhite: white, ContrastWithBlack: black}
	best := white
	a.ReadableOn = OnWhite
	if black > white {
		best = black
		a.ReadableOn = OnBlack
	}
	a.WCAGAANormal = best >= ContrastAANormal
	a.WCAGAALarge = best >= ContrastAALarge
	a.WCAGAAA = best >= ContrastAAA
	return a
}

// accessibilityOf judges the flags on the exact ratios and then reports them
// truncated to two decimals. A ratio is never shown rounded up past a
// threshold it does not meet.
func accessibilityOf(c colorful.Color) Accessibility {
	l := luminance(c)
	a := ScoreContrast(contrast(1, l), contrast(l, 0))
	a.ContrastWithWhite = truncateRatio(a.ContrastWithWhite)
	a.ContrastWithBlack = truncateRatio(a.ContrastWithBlack)
	return a
}

// truncateRatio drops everything past two decimals. The small epsilon keeps
// float noise such as 20.999999999999996 from losing a whole hundredth.
func truncateRatio(v float64) float64 {
	return math.Floor(v*100+1e-9) / 100
}

// luminance is the WCAG relative luminance of an sRGB color.
func luminance(c colorful.Color) float64 {
	r, g, b := c.Clamped().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func contrast(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
