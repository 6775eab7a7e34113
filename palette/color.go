// Package palette turns a base color and a shape configuration into an
// ordered ramp of accessible color steps.
//
// Everything in this package is a pure function of its arguments. Nothing is
// cached between calls, so callers may invoke it as often and from as many
// goroutines as they like.
package palette

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxChroma is the upper bound of the chroma axis used by the engine.
const MaxChroma = 0.4

// OKLCH is a color in the OKLCH space. L is in [0,1], C in [0,MaxChroma]
// and H in degrees [0,360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CMYK holds naive (profile-less) ink percentages.
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// ColorValues is one color described in every format the tool shows.
// Hex is the canonical form: two values are the same color when their Hex
// fields are equal.
type ColorValues struct {
	OKLCH   OKLCH  `json:"oklch"`
	RGB     RGB    `json:"rgb"`
	Hex     string `json:"hex"`
	CMYK    CMYK   `json:"cmyk"`
	Pantone string `json:"pantone,omitempty"`
}

// String returns the canonical hex form.
func (v ColorValues) String() string {
	return v.Hex
}

// Equal reports whether both values name the same color.
func (v ColorValues) Equal(o ColorValues) bool {
	return strings.EqualFold(v.Hex, o.Hex)
}

// ValuesFromHex parses a hex color and fills in every other format.
func ValuesFromHex(hex string) (ColorValues, error) {
	c, err := parseHex(hex)
	if err != nil {
		return ColorValues{}, err
	}
	return valuesFromColor(c), nil
}

// ValuesFromOKLCH converts an OKLCH color to every format. Colors outside
// sRGB are pulled back into gamut by lowering chroma at constant lightness
// and hue, and the OKLCH field reports the color that was actually produced.
func ValuesFromOKLCH(c OKLCH) ColorValues {
	return valuesFromColor(toSRGB(normalizeOKLCH(c)))
}

func valuesFromColor(c colorful.Color) ColorValues {
	c = c.Clamped()
	r, g, b := c.RGB255()
	// Re-read from the quantized color so all fields agree with Hex.
	q := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, ch, h := q.OkLch()

	return ColorValues{
		OKLCH:   OKLCH{L: round(l, 4), C: round(ch, 4), H: round(normalizeHue(h), 2)},
		RGB:     RGB{R: r, G: g, B: b},
		Hex:     q.Hex(),
		CMYK:    toCMYK(q),
		Pantone: NearestPantone(q).Name,
	}
}

// toSRGB maps an OKLCH color into the sRGB cube. In-gamut colors pass
// through; others have their chroma reduced by bisection until they fit.
func toSRGB(c OKLCH) colorful.Color {
	col := colorful.OkLch(c.L, c.C, c.H)
	if col.IsValid() {
		return col
	}

	lo, hi := 0.0, c.C
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if colorful.OkLch(c.L, mid, c.H).IsValid() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return colorful.OkLch(c.L, lo, c.H).Clamped()
}

func toCMYK(c colorful.Color) CMYK {
	k := 1 - math.Max(c.R, math.Max(c.G, c.B))
	if k >= 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: round((1-c.R-k)/(1-k)*100, 1),
		M: round((1-c.G-k)/(1-k)*100, 1),
		Y: round((1-c.B-k)/(1-k)*100, 1),
		K: round(k*100, 1),
	}
}

func fromCMYK(v CMYK) colorful.Color {
	k := clamp(v.K, 0, 100) / 100
	return colorful.Color{
		R: (1 - clamp(v.C, 0, 100)/100) * (1 - k),
		G: (1 - clamp(v.M, 0, 100)/100) * (1 - k),
		B: (1 - clamp(v.Y, 0, 100)/100) * (1 - k),
	}
}

func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
	}
	return colorful.Hex(strings.ToLower(s))
}

func normalizeOKLCH(c OKLCH) OKLCH {
	return OKLCH{
		L: clamp(c.L, 0, 1),
		C: clamp(c.C, 0, MaxChroma),
		H: normalizeHue(c.H),
	}
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
