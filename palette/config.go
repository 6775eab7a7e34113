package palette

import (
	"github.com/samber/lo"
)

const (
	MinSteps     = 3
	MaxSteps     = 25
	DefaultSteps = 9
)

// Config is the shape of a brand's palettes. It is shared by every palette
// of a brand; only the base color differs between them.
type Config struct {
	NumSteps              int          `json:"numSteps"`
	UseLightness          bool         `json:"useLightness"`
	LightnessRange        [2]float64   `json:"lightnessRange"`
	ChromaRange           [2]float64   `json:"chromaRange"`
	HueShift              float64      `json:"hueShift"`
	LightnessDistribution Distribution `json:"lightnessDistribution"`
	ChromaDistribution    Distribution `json:"chromaDistribution"`
	ChromaMode            ChromaMode   `json:"chromaMode"`
	CustomLightness       []float64    `json:"customLightness,omitempty"`
	CustomChroma          []float64    `json:"customChroma,omitempty"`
	LockBaseColor         bool         `json:"lockBaseColor"`
}

// DefaultConfig is a nine-step lightness ramp, darkest first.
func DefaultConfig() Config {
	return Config{
		NumSteps:              DefaultSteps,
		UseLightness:          true,
		LightnessRange:        [2]float64{0.25, 0.97},
		ChromaRange:           [2]float64{0.03, 0.2},
		LightnessDistribution: Linear,
		ChromaDistribution:    Linear,
		ChromaMode:            ChromaConstant,
		LockBaseColor:         true,
	}
}

// ClampSteps forces n into [MinSteps, MaxSteps].
func ClampSteps(n int) int {
	return lo.Clamp(n, MinSteps, MaxSteps)
}

// Normalize returns a copy with every field in range and unknown presets
// replaced by their defaults.
func (c Config) Normalize() Config {
	c.NumSteps = ClampSteps(c.NumSteps)
	for i := range c.LightnessRange {
		c.LightnessRange[i] = clamp(c.LightnessRange[i], 0, 1)
		c.ChromaRange[i] = clamp(c.ChromaRange[i], 0, 1)
	}
	c.HueShift = clamp(c.HueShift, -180, 180)
	if !validDistribution(c.LightnessDistribution) {
		c.LightnessDistribution = Linear
	}
	if !validDistribution(c.ChromaDistribution) {
		c.ChromaDistribution = Linear
	}
	switch c.ChromaMode {
	case ChromaConstant, ChromaDecrease, ChromaIncrease, ChromaCustom:
	default:
		c.ChromaMode = ChromaConstant
	}
	return c
}

func validDistribution(d Distribution) bool {
	return lo.Contains([]Distribution{Linear, EaseIn, EaseOut, SCurve, Custom}, d)
}
