package palette

import (
	"math"
)

// Distribution shapes how steps are spread along an axis.
type Distribution string

const (
	Linear  Distribution = "linear"
	EaseIn  Distribution = "easeIn"
	EaseOut Distribution = "easeOut"
	SCurve  Distribution = "s-curve"
	Custom  Distribution = "custom"
)

// ChromaMode decides how chroma follows lightness when lightness is the
// primary axis.
type ChromaMode string

const (
	ChromaConstant ChromaMode = "constant"
	ChromaDecrease ChromaMode = "decrease"
	ChromaIncrease ChromaMode = "increase"
	ChromaCustom   ChromaMode = "custom"
)

// Ease maps a position t in [0,1] through the named curve.
func Ease(d Distribution, t float64) float64 {
	t = clamp(t, 0, 1)
	switch d {
	case EaseIn:
		return t * t * t
	case EaseOut:
		return 1 - math.Pow(1-t, 3)
	case SCurve:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	default:
		return t
	}
}

// positions returns the eased position of every step. A custom curve reads
// the override array directly and falls back to linear when its length does
// not match n.
func positions(d Distribution, custom []float64, n int) []float64 {
	out := make([]float64, n)
	useCustom := d == Custom && len(custom) == n
	for i := range out {
		if useCustom {
			out[i] = clamp(custom[i], 0, 1)
			continue
		}
		dist := d
		if dist == Custom {
			dist = Linear
		}
		out[i] = Ease(dist, stepPosition(i, n))
	}
	return out
}

// chromaPositions is the secondary-axis counterpart of positions.
func chromaPositions(mode ChromaMode, d Distribution, custom []float64, n int) []float64 {
	switch mode {
	case ChromaConstant:
		out := make([]float64, n)
		for i := range out {
			out[i] = 0.5
		}
		return out
	case ChromaDecrease:
		out := positions(d, nil, n)
		for i := range out {
			out[i] = 1 - out[i]
		}
		return out
	case ChromaCustom:
		return positions(Custom, custom, n)
	default:
		return positions(d, nil, n)
	}
}

func stepPosition(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

func lerp(r [2]float64, t float64) float64 {
	return r[0] + t*(r[1]-r[0])
}
