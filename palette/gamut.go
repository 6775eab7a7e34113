package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gamut is a display color space.
type Gamut string

const (
	GamutSRGB      Gamut = "srgb"
	GamutDisplayP3 Gamut = "p3"
)

// Chroma above which IsOutOfGamut flags a color. These are empirical
// approximations of the gamut boundaries, not derived from them.
const (
	SRGBChromaThreshold = 0.13
	P3ChromaThreshold   = 0.3
)

// GamutReport is what the UI shows next to a color picker.
type GamutReport struct {
	LikelyOutOfSRGB bool `json:"likelyOutOfSrgb"`
	LikelyOutOfP3   bool `json:"likelyOutOfP3"`
	OutOfSRGB       bool `json:"outOfSrgb"`
	OutOfP3         bool `json:"outOfP3"`
}

// IsOutOfGamut is a quick chroma-only guess at whether c falls outside g.
// It ignores lightness and hue, so it over-reports near the poles and
// under-reports for some saturated hues. Use ExceedsGamut for an exact answer.
func IsOutOfGamut(c OKLCH, g Gamut) bool {
	switch g {
	case GamutDisplayP3:
		return c.C > P3ChromaThreshold
	default:
		return c.C > SRGBChromaThreshold
	}
}

// ExceedsGamut converts c to linear RGB in the target space and reports
// whether any channel falls outside [0,1].
func ExceedsGamut(c OKLCH, g Gamut) bool {
	const eps = 1e-5

	r, gr, b := colorful.OkLch(clamp(c.L, 0, 1), clamp(c.C, 0, MaxChroma), normalizeHue(c.H)).LinearRgb()
	if g == GamutDisplayP3 {
		r, gr, b = linearSRGBToP3(r, gr, b)
	}
	for _, v := range [3]float64{r, gr, b} {
		if v < -eps || v > 1+eps {
			return true
		}
	}
	return false
}

// CheckGamut runs both the heuristic and the exact test.
func CheckGamut(c OKLCH) GamutReport {
	return GamutReport{
		LikelyOutOfSRGB: IsOutOfGamut(c, GamutSRGB),
		LikelyOutOfP3:   IsOutOfGamut(c, GamutDisplayP3),
		OutOfSRGB:       ExceedsGamut(c, GamutSRGB),
		OutOfP3:         ExceedsGamut(c, GamutDisplayP3),
	}
}

// linearSRGBToP3 shares the D65 white point, so it is a single matrix.
func linearSRGBToP3(r, g, b float64) (float64, float64, float64) {
	return 0.8224621*r + 0.1775380*g + 0.0000000*b,
		0.0331941*r + 0.9668058*g + 0.0000000*b,
		0.0170827*r + 0.0723974*g + 0.9105199*b
}
