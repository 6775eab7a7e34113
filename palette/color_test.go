package palette

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRoundTrip(t *testing.T) {
	Convey("Hex to OKLCH and back", t, func() {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 100; i++ {
			hex := fmt.Sprintf("#%02x%02x%02x", rng.Intn(256), rng.Intn(256), rng.Intn(256))
			v, err := ValuesFromHex(hex)
			So(err, ShouldBeNil)
			So(v.Hex, ShouldEqual, hex)

			back := ValuesFromOKLCH(v.OKLCH)
			So(int(back.RGB.R), ShouldAlmostEqual, int(v.RGB.R), 1)
			So(int(back.RGB.G), ShouldAlmostEqual, int(v.RGB.G), 1)
			So(int(back.RGB.B), ShouldAlmostEqual, int(v.RGB.B), 1)
		}
	})
}

func TestParseColor(t *testing.T) {
	Convey("ParseColor", t, func() {
		Convey("Should accept every input notation", func() {
			for _, in := range []string{
				"#3366ff",
				"#36F",
				"3366ff",
				"rgb(51, 102, 255)",
				"rgb(51 102 255)",
				"hsl(225, 100%, 60%)",
			} {
				v, err := ParseColor(in)
				So(err, ShouldBeNil)
				So(v.Hex, ShouldEqual, "#3366ff")
			}
		})

		Convey("Should read oklch with percent or fractional lightness", func() {
			a, err := ParseColor("oklch(62.8% 0.2577 29.23)")
			So(err, ShouldBeNil)
			b, _ := ParseColor("oklch(0.628 0.2577 29.23)")
			So(a.Hex, ShouldEqual, b.Hex)
			So(a.Hex, ShouldEqual, "#ff0000")
		})

		Convey("Should read cmyk", func() {
			v, err := ParseColor("cmyk(0%, 100%, 100%, 0%)")
			So(err, ShouldBeNil)
			So(v.Hex, ShouldEqual, "#ff0000")
		})

		Convey("Should reject garbage", func() {
			for _, in := range []string{"", "#12", "#gggggg", "rgb(1,2)", "lab(50 20 20)", "oklch(a b c)"} {
				_, err := ParseColor(in)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Should fill every format", func() {
			v, _ := ParseColor("#ff0000")
			So(v.RGB, ShouldResemble, RGB{R: 255})
			So(v.CMYK, ShouldResemble, CMYK{C: 0, M: 100, Y: 100, K: 0})
			So(v.OKLCH.L, ShouldAlmostEqual, 0.628, 0.001)
			So(v.OKLCH.C, ShouldAlmostEqual, 0.2577, 0.001)
			So(v.OKLCH.H, ShouldAlmostEqual, 29.23, 0.05)
			So(v.Pantone, ShouldNotBeEmpty)
		})
	})
}

func TestConvertColor(t *testing.T) {
	Convey("ConvertColor", t, func() {
		Convey("Should convert between notations", func() {
			out, err := ConvertColor("#ff0000", FormatHex, FormatRGB)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "rgb(255, 0, 0)")

			out, _ = ConvertColor("#ff0000", FormatHex, FormatHSL)
			So(out, ShouldEqual, "hsl(0, 100%, 50%)")

			out, _ = ConvertColor("#ff0000", FormatHex, FormatCMYK)
			So(out, ShouldEqual, "cmyk(0%, 100%, 100%, 0%)")

			out, _ = ConvertColor("rgb(255, 0, 0)", FormatRGB, FormatHex)
			So(out, ShouldEqual, "#ff0000")

			out, _ = ConvertColor("#ff0000", FormatHex, FormatOKLCH)
			So(out, ShouldStartWith, "oklch(62.8")
		})

		Convey("Should detect the source notation when none is given", func() {
			out, err := ConvertColor("hsl(0, 100%, 50%)", FormatAuto, FormatHex)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "#ff0000")
		})

		Convey("Should name the nearest reference spot color", func() {
			out, err := ConvertColor("#0033a0", FormatHex, FormatPantone)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "PANTONE 286 C")
		})

		Convey("Should hand back the input on failure", func() {
			out, err := ConvertColor("#nothex", FormatHex, FormatRGB)
			So(err, ShouldNotBeNil)
			So(out, ShouldEqual, "#nothex")

			out, err = ConvertColor("#ff0000", FormatHex, "lab")
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
			So(out, ShouldEqual, "#ff0000")
		})
	})
}

func TestAccessibility(t *testing.T) {
	Convey("CheckAccessibility", t, func() {
		Convey("Should give the extremes for white and black", func() {
			w, err := CheckAccessibility("#ffffff")
			So(err, ShouldBeNil)
			So(w.ContrastWithWhite, ShouldEqual, 1)
			So(w.ContrastWithBlack, ShouldEqual, 21)
			So(w.ReadableOn, ShouldEqual, OnBlack)

			b, _ := CheckAccessibility("#000000")
			So(b.ContrastWithWhite, ShouldEqual, 21)
			So(b.WCAGAAA, ShouldBeTrue)
		})

		Convey("Should split the classic gray pair at AA", func() {
			pass, _ := CheckAccessibility("#767676")
			So(pass.ContrastWithWhite, ShouldEqual, 4.54)
			So(pass.WCAGAANormal, ShouldBeTrue)
			So(pass.WCAGAAA, ShouldBeFalse)

			fail, _ := CheckAccessibility("#777777")
			So(fail.ContrastWithWhite, ShouldEqual, 4.47)
			So(fail.ContrastWithBlack, ShouldBeGreaterThan, fail.ContrastWithWhite)
		})

		Convey("Should not award AAA to colors just short of 7:1", func() {
			for _, hex := range []string{"#003cf8", "#004ed0", "#0050ca"} {
				a, err := CheckAccessibility(hex)
				So(err, ShouldBeNil)
				So(a.WCAGAAA, ShouldBeFalse)
				So(a.WCAGAANormal, ShouldBeTrue)
				So(a.ContrastWithWhite, ShouldEqual, 6.99)
			}
		})

		Convey("Should reject a malformed hex", func() {
			_, err := CheckAccessibility("rgb(0,0,0)")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("ScoreContrast", t, func() {
		Convey("Should treat thresholds as inclusive", func() {
			So(ScoreContrast(4.5, 1).WCAGAANormal, ShouldBeTrue)
			So(ScoreContrast(4.49, 1).WCAGAANormal, ShouldBeFalse)
			So(ScoreContrast(3.0, 1).WCAGAALarge, ShouldBeTrue)
			So(ScoreContrast(2.99, 1).WCAGAALarge, ShouldBeFalse)
			So(ScoreContrast(7.0, 1).WCAGAAA, ShouldBeTrue)
			So(ScoreContrast(6.99, 1).WCAGAAA, ShouldBeFalse)
		})

		Convey("Should judge against the better background", func() {
			a := ScoreContrast(2, 10.5)
			So(a.ReadableOn, ShouldEqual, OnBlack)
			So(a.WCAGAAA, ShouldBeTrue)
		})
	})

	Convey("ContrastRatio", t, func() {
		r, err := ContrastRatio("#000", "rgb(255, 255, 255)")
		So(err, ShouldBeNil)
		So(r, ShouldEqual, 21)

		_, err = ContrastRatio("#000", "nope")
		So(err, ShouldNotBeNil)
	})
}

func TestGamut(t *testing.T) {
	Convey("IsOutOfGamut", t, func() {
		So(IsOutOfGamut(OKLCH{L: 0.6, C: 0.14, H: 30}, GamutSRGB), ShouldBeTrue)
		So(IsOutOfGamut(OKLCH{L: 0.6, C: 0.13, H: 30}, GamutSRGB), ShouldBeFalse)
		So(IsOutOfGamut(OKLCH{L: 0.6, C: 0.31, H: 30}, GamutDisplayP3), ShouldBeTrue)
		So(IsOutOfGamut(OKLCH{L: 0.6, C: 0.2, H: 30}, GamutDisplayP3), ShouldBeFalse)
	})

	Convey("ExceedsGamut", t, func() {
		Convey("Should keep neutrals inside both spaces", func() {
			So(ExceedsGamut(OKLCH{L: 0.5}, GamutSRGB), ShouldBeFalse)
			So(ExceedsGamut(OKLCH{L: 0.5}, GamutDisplayP3), ShouldBeFalse)
		})

		Convey("Should place a wide red inside P3 but outside sRGB", func() {
			c := OKLCH{L: 0.6486, C: 0.28, H: 28.96}
			So(ExceedsGamut(c, GamutSRGB), ShouldBeTrue)
			So(ExceedsGamut(c, GamutDisplayP3), ShouldBeFalse)
		})

		Convey("Should report both tests together", func() {
			r := CheckGamut(OKLCH{L: 0.5, C: 0.05, H: 120})
			So(r, ShouldResemble, GamutReport{})
		})
	})
}
