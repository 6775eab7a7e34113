package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Format names a textual color notation.
type Format string

const (
	FormatAuto    Format = ""
	FormatHex     Format = "hex"
	FormatRGB     Format = "rgb"
	FormatHSL     Format = "hsl"
	FormatOKLCH   Format = "oklch"
	FormatCMYK    Format = "cmyk"
	FormatPantone Format = "pantone"
)

// Formats lists the notations ConvertColor understands.
var Formats = []Format{FormatHex, FormatRGB, FormatHSL, FormatOKLCH, FormatCMYK, FormatPantone}

var ErrUnsupportedFormat = errors.New("unsupported color format")

// ParseColor reads a color written as hex, rgb(), hsl(), oklch() or cmyk().
func ParseColor(s string) (ColorValues, error) {
	return parseAs(s, FormatAuto)
}

// ConvertColor rewrites color from one notation into another. An empty from
// format detects the notation. On failure the input is returned unchanged
// together with the error.
func ConvertColor(color string, from, to Format) (string, error) {
	v, err := parseAs(color, from)
	if err != nil {
		return color, err
	}
	out, err := FormatValues(v, to)
	if err != nil {
		return color, err
	}
	return out, nil
}

// FormatValues renders v in the given notation.
func FormatValues(v ColorValues, f Format) (string, error) {
	switch Format(strings.ToLower(string(f))) {
	case FormatHex:
		return v.Hex, nil
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", v.RGB.R, v.RGB.G, v.RGB.B), nil
	case FormatHSL:
		h, s, l := rgbColor(v.RGB).Hsl()
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", num(normalizeHue(h), 1), num(s*100, 1), num(l*100, 1)), nil
	case FormatOKLCH:
		return fmt.Sprintf("oklch(%s%% %s %s)", num(v.OKLCH.L*100, 2), num(v.OKLCH.C, 4), num(v.OKLCH.H, 2)), nil
	case FormatCMYK:
		return fmt.Sprintf("cmyk(%s%%, %s%%, %s%%, %s%%)", num(v.CMYK.C, 1), num(v.CMYK.M, 1), num(v.CMYK.Y, 1), num(v.CMYK.K, 1)), nil
	case FormatPantone:
		return NearestPantone(rgbColor(v.RGB)).Name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func parseAs(s string, f Format) (ColorValues, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if f == FormatAuto {
		f = detectFormat(s)
	}

	switch f {
	case FormatHex:
		return ValuesFromHex(s)
	case FormatRGB:
		args, err := functionArgs(s, "rgb", "rgba")
		if err != nil || len(args) < 3 {
			return ColorValues{}, fmt.Errorf("invalid rgb color %q", s)
		}
		var ch [3]float64
		for i := range ch {
			v, pct, err := parseNumber(args[i])
			if err != nil {
				return ColorValues{}, fmt.Errorf("invalid rgb color %q: %w", s, err)
			}
			if pct {
				v = v * 255 / 100
			}
			ch[i] = clamp(v, 0, 255) / 255
		}
		return valuesFromColor(colorful.Color{R: ch[0], G: ch[1], B: ch[2]}), nil
	case FormatHSL:
		args, err := functionArgs(s, "hsl", "hsla")
		if err != nil || len(args) < 3 {
			return ColorValues{}, fmt.Errorf("invalid hsl color %q", s)
		}
		h, _, err1 := parseNumber(strings.TrimSuffix(args[0], "deg"))
		sat, _, err2 := parseNumber(args[1])
		l, _, err3 := parseNumber(args[2])
		if err := errors.Join(err1, err2, err3); err != nil {
			return ColorValues{}, fmt.Errorf("invalid hsl color %q: %w", s, err)
		}
		return valuesFromColor(colorful.Hsl(normalizeHue(h), clamp(sat, 0, 100)/100, clamp(l, 0, 100)/100)), nil
	case FormatOKLCH:
		args, err := functionArgs(s, "oklch")
		if err != nil || len(args) < 3 {
			return ColorValues{}, fmt.Errorf("invalid oklch color %q", s)
		}
		l, lpct, err1 := parseNumber(args[0])
		c, cpct, err2 := parseNumber(args[1])
		h, _, err3 := parseNumber(strings.TrimSuffix(args[2], "deg"))
		if err := errors.Join(err1, err2, err3); err != nil {
			return ColorValues{}, fmt.Errorf("invalid oklch color %q: %w", s, err)
		}
		if lpct {
			l /= 100
		}
		if cpct {
			c = c / 100 * MaxChroma
		}
		return ValuesFromOKLCH(OKLCH{L: l, C: c, H: h}), nil
	case FormatCMYK:
		args, err := functionArgs(s, "cmyk", "device-cmyk")
		if err != nil || len(args) < 4 {
			return ColorValues{}, fmt.Errorf("invalid cmyk color %q", s)
		}
		var ch [4]float64
		for i := range ch {
			v, pct, err := parseNumber(args[i])
			if err != nil {
				return ColorValues{}, fmt.Errorf("invalid cmyk color %q: %w", s, err)
			}
			if !pct && v <= 1 {
				v *= 100
			}
			ch[i] = v
		}
		return valuesFromColor(fromCMYK(CMYK{C: ch[0], M: ch[1], Y: ch[2], K: ch[3]})), nil
	}
	return ColorValues{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func detectFormat(s string) Format {
	switch {
	case strings.HasPrefix(s, "rgb"):
		return FormatRGB
	case strings.HasPrefix(s, "hsl"):
		return FormatHSL
	case strings.HasPrefix(s, "oklch"):
		return FormatOKLCH
	case strings.HasPrefix(s, "cmyk"), strings.HasPrefix(s, "device-cmyk"):
		return FormatCMYK
	}
	return FormatHex
}

// functionArgs splits "name(a, b c / d)" into its arguments.
func functionArgs(s string, names ...string) ([]string, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("expected function notation, got %q", s)
	}
	name := strings.TrimSpace(s[:open])
	known := false
	for _, n := range names {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unexpected function %q", name)
	}
	body := strings.NewReplacer(",", " ", "/", " ").Replace(s[open+1 : len(s)-1])
	return strings.Fields(body), nil
}

func parseNumber(s string) (float64, bool, error) {
	pct := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	return v, pct, err
}

func rgbColor(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func num(v float64, places int) string {
	return strconv.FormatFloat(round(v, places), 'f', -1, 64)
}
