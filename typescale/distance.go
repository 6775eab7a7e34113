// Package typescale derives font-size scales, either from a base size and a
// ratio or from how far away and how well a reader sees the text.
package typescale

import (
	"math"
)

// TextType distinguishes running text from short isolated labels.
type TextType string

const (
	Continuous TextType = "continuous"
	Isolated   TextType = "isolated"
)

// Lighting is the ambient light the text is read under.
type Lighting string

const (
	LightingGood     Lighting = "good"
	LightingModerate Lighting = "moderate"
	LightingPoor     Lighting = "poor"
)

const (
	// minimumVisualAngle is the smallest legible visual angle, in degrees.
	minimumVisualAngle = 0.21
	mmPerInch          = 25.4

	MinVisualAcuity = 0.1
	DefaultPPI      = 96
)

var lightingFactor = map[Lighting]float64{
	LightingGood:     1,
	LightingModerate: 1.25,
	LightingPoor:     1.5,
}

var textTypeFactor = map[TextType]float64{
	Continuous: 1,
	Isolated:   1.5,
}

// DistanceParams are the viewing conditions a distance-based scale is
// derived from.
type DistanceParams struct {
	ViewingDistance float64  `json:"viewingDistance"` // cm
	VisualAcuity    float64  `json:"visualAcuity"`    // decimal, 1.0 is normal
	MeanLengthRatio float64  `json:"meanLengthRatio"`
	TextType        TextType `json:"textType"`
	Lighting        Lighting `json:"lighting"`
	PPI             float64  `json:"ppi"`
}

// DefaultDistanceParams describes a laptop read at arm's length.
func DefaultDistanceParams() DistanceParams {
	return DistanceParams{
		ViewingDistance: 50,
		VisualAcuity:    1,
		MeanLengthRatio: 1,
		TextType:        Continuous,
		Lighting:        LightingGood,
		PPI:             DefaultPPI,
	}
}

// BaseSize is CalculateDistanceBasedSize applied to p.
func (p DistanceParams) BaseSize() float64 {
	return CalculateDistanceBasedSize(p.ViewingDistance, p.VisualAcuity, p.MeanLengthRatio, p.TextType, p.Lighting, p.PPI)
}

// CalculateDistanceBasedSize returns the smallest comfortable font size, in
// whole pixels, for text read at distance centimetres.
//
// Degenerate inputs are clamped rather than rejected: acuity below
// MinVisualAcuity is raised to it, a non-positive distance becomes 1 cm, a
// non-positive length ratio becomes 1, a non-positive ppi becomes DefaultPPI,
// and an unknown text type or lighting contributes a factor of 1.
func CalculateDistanceBasedSize(distance, visualAcuity, meanLengthRatio float64, textType TextType, lighting Lighting, ppi float64) float64 {
	if !(distance > 0) {
		distance = 1
	}
	if !(visualAcuity >= MinVisualAcuity) {
		visualAcuity = MinVisualAcuity
	}
	if !(meanLengthRatio > 0) {
		meanLengthRatio = 1
	}
	if !(ppi > 0) {
		ppi = DefaultPPI
	}

	distanceInMm := distance * 10
	visualAngleRad := (minimumVisualAngle * math.Pi) / 180
	baseSizeMm := 2 * distanceInMm * math.Tan(visualAngleRad/2)
	baseSizeMm /= visualAcuity
	baseSizeMm *= meanLengthRatio
	baseSizeMm *= factor(lightingFactor, lighting)
	baseSizeMm *= factor(textTypeFactor, textType)

	return math.Round(baseSizeMm * ppi / mmPerInch)
}

func factor[K comparable](table map[K]float64, k K) float64 {
	if f, ok := table[k]; ok {
		return f
	}
	return 1
}
