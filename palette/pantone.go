package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PantoneSwatch is a reference spot color with its published sRGB value.
type PantoneSwatch struct {
	Name string
	Hex  string

	color colorful.Color
}

// pantoneCoated is a small reference set of coated spot colors. Matching is
// nearest-neighbour, so the result is a hint for print handoff and not a
// color-managed conversion.
var pantoneCoated = []PantoneSwatch{
	{Name: "PANTONE Yellow C", Hex: "#fedd00"},
	{Name: "PANTONE 109 C", Hex: "#ffd100"},
	{Name: "PANTONE 123 C", Hex: "#ffc72c"},
	{Name: "PANTONE 137 C", Hex: "#ffa300"},
	{Name: "PANTONE 151 C", Hex: "#ff8200"},
	{Name: "PANTONE Orange 021 C", Hex: "#fe5000"},
	{Name: "PANTONE Warm Red C", Hex: "#f9423a"},
	{Name: "PANTONE 185 C", Hex: "#e4002b"},
	{Name: "PANTONE 186 C", Hex: "#c8102e"},
	{Name: "PANTONE 200 C", Hex: "#ba0c2f"},
	{Name: "PANTONE Rubine Red C", Hex: "#ce0058"},
	{Name: "PANTONE Rhodamine Red C", Hex: "#e10098"},
	{Name: "PANTONE 226 C", Hex: "#d0006f"},
	{Name: "PANTONE Purple C", Hex: "#bb29bb"},
	{Name: "PANTONE 2685 C", Hex: "#330072"},
	{Name: "PANTONE Violet C", Hex: "#440099"},
	{Name: "PANTONE Reflex Blue C", Hex: "#001489"},
	{Name: "PANTONE 286 C", Hex: "#0033a0"},
	{Name: "PANTONE 293 C", Hex: "#003da5"},
	{Name: "PANTONE 300 C", Hex: "#005eb8"},
	{Name: "PANTONE Process Blue C", Hex: "#0085ca"},
	{Name: "PANTONE 2925 C", Hex: "#009cde"},
	{Name: "PANTONE 312 C", Hex: "#00a9ce"},
	{Name: "PANTONE 320 C", Hex: "#009ca6"},
	{Name: "PANTONE 3405 C", Hex: "#00af66"},
	{Name: "PANTONE 347 C", Hex: "#009a44"},
	{Name: "PANTONE Green C", Hex: "#00ab84"},
	{Name: "PANTONE 376 C", Hex: "#84bd00"},
	{Name: "PANTONE 382 C", Hex: "#c4d600"},
	{Name: "PANTONE 4625 C", Hex: "#4f2c1d"},
	{Name: "PANTONE 7527 C", Hex: "#d6d2c4"},
	{Name: "PANTONE 7545 C", Hex: "#425563"},
	{Name: "PANTONE Cool Gray 1 C", Hex: "#d9d9d6"},
	{Name: "PANTONE Cool Gray 5 C", Hex: "#b1b3b3"},
	{Name: "PANTONE Cool Gray 9 C", Hex: "#75787b"},
	{Name: "PANTONE Cool Gray 11 C", Hex: "#53565a"},
	{Name: "PANTONE Black C", Hex: "#2d2926"},
	{Name: "PANTONE White", Hex: "#ffffff"},
}

func init() {
	for i := range pantoneCoated {
		pantoneCoated[i].color, _ = colorful.Hex(pantoneCoated[i].Hex)
	}
}

// NearestPantone returns the reference swatch closest to c by CIEDE2000.
func NearestPantone(c colorful.Color) PantoneSwatch {
	best := pantoneCoated[0]
	bestDist := c.DistanceCIEDE2000(best.color)
	for _, sw := range pantoneCoated[1:] {
		if d := c.DistanceCIEDE2000(sw.color); d < bestDist {
			best, bestDist = sw, d
		}
	}
	return best
}
