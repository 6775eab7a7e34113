package typescale

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	DefaultBaseSize = 16
	DefaultRatio    = 1.25
	MaxSteps        = 12
)

// Method selects how the base size of a scale is obtained.
type Method string

const (
	Modular  Method = "modular"
	Distance Method = "distance"
)

// ScaleValue is one entry of a generated scale.
type ScaleValue struct {
	Label string  `json:"label"`
	Size  float64 `json:"size"`
	Ratio float64 `json:"ratio"`
}

// Config is a brand's type-scale settings.
type Config struct {
	Method    Method         `json:"method"`
	BaseSize  float64        `json:"baseSize"`
	Ratio     float64        `json:"ratio"`
	StepsUp   int            `json:"stepsUp"`
	StepsDown int            `json:"stepsDown"`
	Distance  DistanceParams `json:"distance"`
}

// DefaultConfig is a major-third scale on 16px, five steps up and two down.
func DefaultConfig() Config {
	return Config{
		Method:    Modular,
		BaseSize:  DefaultBaseSize,
		Ratio:     DefaultRatio,
		StepsUp:   5,
		StepsDown: 2,
		Distance:  DefaultDistanceParams(),
	}
}

// BaseSizePx is the base size the scale is built on. Distance scales derive
// it from the viewing parameters and ignore BaseSize.
func (c Config) BaseSizePx() float64 {
	if c.Method == Distance {
		return c.Distance.BaseSize()
	}
	return c.BaseSize
}

// Values generates the scale for c.
func (c Config) Values() []ScaleValue {
	return ScaleValues(c.BaseSizePx(), c.Ratio, c.StepsUp, c.StepsDown)
}

// Label names the entry k steps away from the base: "f-2", "f0", "f3".
func Label(k int) string {
	return fmt.Sprintf("f%d", k)
}

// ParseLabel is the inverse of Label.
func ParseLabel(label string) (int, bool) {
	rest, ok := strings.CutPrefix(label, "f")
	if !ok || rest == "" || rest == "-" {
		return 0, false
	}
	k, err := strconv.Atoi(rest)
	if err != nil || strings.HasPrefix(rest, "+") {
		return 0, false
	}
	return k, true
}

// Validate rejects settings the scale cannot be built from. Out-of-range
// numbers are not errors; ScaleValues clamps them.
func (c Config) Validate() error {
	switch c.Method {
	case Modular, Distance:
	default:
		return fmt.Errorf("unknown scale method %q", c.Method)
	}
	if c.StepsUp > MaxSteps || c.StepsDown > MaxSteps {
		return fmt.Errorf("at most %d steps in each direction", MaxSteps)
	}
	return nil
}

// ScaleValues builds stepsDown+1+stepsUp sizes ordered from smallest to
// largest. Sizes are rounded to whole pixels and ratios to three decimals,
// so repeated calls agree exactly.
//
// A non-positive base falls back to DefaultBaseSize, a ratio that would not
// grow the scale falls back to DefaultRatio, and step counts are clamped to
// [0, MaxSteps].
func ScaleValues(baseSize, ratio float64, stepsUp, stepsDown int) []ScaleValue {
	if !(baseSize > 0) || math.IsInf(baseSize, 0) {
		baseSize = DefaultBaseSize
	}
	if !(ratio > 1) || math.IsInf(ratio, 0) {
		ratio = DefaultRatio
	}
	stepsUp = lo.Clamp(stepsUp, 0, MaxSteps)
	stepsDown = lo.Clamp(stepsDown, 0, MaxSteps)

	out := make([]ScaleValue, 0, stepsDown+1+stepsUp)
	for k := stepsDown; k >= 1; k-- {
		f := math.Pow(ratio, float64(k))
		out = append(out, ScaleValue{
			Label: Label(-k),
			Size:  math.Round(baseSize / f),
			Ratio: math.Round((1/f)*1000) / 1000,
		})
	}
	out = append(out, ScaleValue{Label: Label(0), Size: math.Round(baseSize), Ratio: 1})
	for k := 1; k <= stepsUp; k++ {
		f := math.Pow(ratio, float64(k))
		out = append(out, ScaleValue{
			Label: Label(k),
			Size:  math.Round(baseSize * f),
			Ratio: math.Round(f*1000) / 1000,
		})
	}
	return out
}

// NamedRatio is a scale ratio borrowed from a musical interval.
type NamedRatio struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Ratios lists the common intervals, smallest first.
var Ratios = []NamedRatio{
	{Name: "minor-second", Value: 1.067},
	{Name: "major-second", Value: 1.125},
	{Name: "minor-third", Value: 1.2},
	{Name: "major-third", Value: 1.25},
	{Name: "perfect-fourth", Value: 1.333},
	{Name: "augmented-fourth", Value: 1.414},
	{Name: "perfect-fifth", Value: 1.5},
	{Name: "minor-sixth", Value: 1.6},
	{Name: "golden-ratio", Value: 1.618},
	{Name: "major-sixth", Value: 1.667},
	{Name: "minor-seventh", Value: 1.778},
	{Name: "major-seventh", Value: 1.875},
	{Name: "octave", Value: 2},
}

// RatioByName looks up an interval by name, ignoring case and separators.
func RatioByName(name string) (float64, bool) {
	key := strings.NewReplacer(" ", "-", "_", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
	r, ok := lo.Find(Ratios, func(r NamedRatio) bool { return r.Name == key })
	return r.Value, ok
}

// SortedLabels returns the labels of values in size order.
func SortedLabels(values []ScaleValue) []string {
	sorted := append([]ScaleValue(nil), values...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Size < sorted[j].Size })
	return lo.Map(sorted, func(v ScaleValue, _ int) string { return v.Label })
}
