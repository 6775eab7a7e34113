package palette

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorStep is one rung of a palette. Its position in the palette is its
// rank along the primary axis.
type ColorStep struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Values        ColorValues   `json:"values"`
	Accessibility Accessibility `json:"accessibility"`
	IsBaseColor   bool          `json:"isBaseColor,omitempty"`
	Overridden    bool          `json:"overridden,omitempty"`
}

// stepNamespace seeds the name-based UUIDs of generated steps.
var stepNamespace = uuid.MustParse("6f1c2b4e-8d3a-5e7f-9a0b-1c2d3e4f5a6b")

// fallbackGray is the OKLCH lightness of the placeholder ramp's midpoint.
const fallbackGray = 0.6

// BaseIndex is the position of the base-color slot in a palette of n steps.
func BaseIndex(n int) int {
	return n / 2
}

// StepName is the ordinal label of step i: "100", "200", …
func StepName(i int) string {
	return strconv.Itoa((i + 1) * 100)
}

// Generate builds a palette of numSteps colors around base.
//
// numSteps is clamped to [MinSteps, MaxSteps]. When useLightness is set the
// steps walk cfg.LightnessRange and chroma follows cfg.ChromaMode; otherwise
// chroma walks cfg.ChromaRange at the base color's lightness.
//
// Generate always returns a full palette. When base cannot be parsed it
// returns a neutral gray ramp with zeroed accessibility scores along with
// the parse error, so callers can render something and still report the
// fault.
func Generate(base string, numSteps int, useLightness bool, cfg Config) ([]ColorStep, error) {
	n := ClampSteps(numSteps)
	cfg = cfg.Normalize()

	baseValues, err := ParseColor(base)
	if err != nil {
		return fallback(n), fmt.Errorf("generate palette from %q: %w", base, err)
	}
	return generate(baseValues, n, useLightness, cfg), nil
}

// Regenerate rebuilds steps for an existing palette. Steps the user has
// overridden keep their color when the palette keeps its length.
func Regenerate(base ColorValues, previous []ColorStep, cfg Config) []ColorStep {
	cfg = cfg.Normalize()
	steps := generate(base, cfg.NumSteps, cfg.UseLightness, cfg)
	if len(previous) != len(steps) {
		return steps
	}
	for i, prev := range previous {
		if prev.Overridden && !steps[i].IsBaseColor {
			steps[i] = OverrideStep(steps[i], prev.Values)
		}
	}
	return steps
}

// OverrideStep replaces one step's color with a user-picked value and
// rescores it.
func OverrideStep(step ColorStep, v ColorValues) ColorStep {
	c := rgbColor(v.RGB)
	step.Values = valuesFromColor(c)
	step.Accessibility = accessibilityOf(c)
	step.Overridden = true
	return step
}

func generate(base ColorValues, n int, useLightness bool, cfg Config) []ColorStep {
	var ls, cs []float64
	if useLightness {
		ls = mapRange(positions(cfg.LightnessDistribution, cfg.CustomLightness, n), cfg.LightnessRange)
		cs = mapRange(chromaPositions(cfg.ChromaMode, cfg.ChromaDistribution, cfg.CustomChroma, n), cfg.ChromaRange)
	} else {
		cs = mapRange(positions(cfg.ChromaDistribution, cfg.CustomChroma, n), cfg.ChromaRange)
		ls = make([]float64, n)
		for i := range ls {
			ls[i] = base.OKLCH.L
		}
	}

	baseIdx := BaseIndex(n)
	steps := make([]ColorStep, n)
	for i := range steps {
		var values ColorValues
		if i == baseIdx && cfg.LockBaseColor {
			values = base
		} else {
			t := stepPosition(i, n)
			values = ValuesFromOKLCH(OKLCH{
				L: ls[i],
				C: cs[i],
				H: base.OKLCH.H + cfg.HueShift*(t-0.5),
			})
		}
		steps[i] = newStep(i, values)
		steps[i].IsBaseColor = i == baseIdx
	}
	return steps
}

func fallback(n int) []ColorStep {
	steps := make([]ColorStep, n)
	for i := range steps {
		l := fallbackGray + 0.3*(stepPosition(i, n)-0.5)
		steps[i] = ColorStep{
			ID:          stepID(i, "fallback"),
			Name:        StepName(i),
			Values:      ValuesFromOKLCH(OKLCH{L: l}),
			IsBaseColor: i == BaseIndex(n),
		}
	}
	return steps
}

func newStep(i int, v ColorValues) ColorStep {
	return ColorStep{
		ID:            stepID(i, v.Hex),
		Name:          StepName(i),
		Values:        v,
		Accessibility: accessibilityOf(rgbColor(v.RGB)),
	}
}

func stepID(i int, hex string) string {
	return uuid.NewSHA1(stepNamespace, []byte(fmt.Sprintf("%d:%s", i, hex))).String()
}

func mapRange(ts []float64, r [2]float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = lerp(r, t)
	}
	return out
}

// Swatch returns the step's color as a go-colorful value for callers that
// render it.
func (s ColorStep) Swatch() colorful.Color {
	return rgbColor(s.Values.RGB)
}
