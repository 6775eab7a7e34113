package typescale

import (
	"github.com/samber/lo"
)

// TypeStyle is a named text style that points at a scale entry by label.
// Its size is never stored; it is looked up against the current scale
// every time the style is read.
type TypeStyle struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ScaleStep     string  `json:"scaleStep"`
	FontWeight    int     `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
	LetterSpacing float64 `json:"letterSpacing"`
	OpticalSize   float64 `json:"opticalSize,omitempty"`
}

// ResolvedStyle is a TypeStyle with its size filled in.
type ResolvedStyle struct {
	TypeStyle
	Size    float64 `json:"size"`
	Missing bool    `json:"missing,omitempty"`
}

// Resolve looks every style's scale step up in values. Styles pointing at a
// label the scale no longer has are returned with Missing set and no size.
func Resolve(styles []TypeStyle, values []ScaleValue) []ResolvedStyle {
	byLabel := lo.SliceToMap(values, func(v ScaleValue) (string, float64) { return v.Label, v.Size })
	return lo.Map(styles, func(s TypeStyle, _ int) ResolvedStyle {
		size, ok := byLabel[s.ScaleStep]
		return ResolvedStyle{TypeStyle: s, Size: size, Missing: !ok}
	})
}
