package palette

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Generate", t, func() {
		cfg := DefaultConfig()

		Convey("Should return exactly numSteps steps for every supported size", func() {
			for n := MinSteps; n <= MaxSteps; n++ {
				steps, err := Generate("#3366ff", n, true, cfg)
				So(err, ShouldBeNil)
				So(steps, ShouldHaveLength, n)
			}
		})

		Convey("Should clamp sizes outside the supported range", func() {
			steps, _ := Generate("#3366ff", 1, true, cfg)
			So(steps, ShouldHaveLength, MinSteps)
			steps, _ = Generate("#3366ff", 400, true, cfg)
			So(steps, ShouldHaveLength, MaxSteps)
		})

		Convey("Should be deterministic", func() {
			cfg.HueShift = 40
			cfg.LightnessDistribution = SCurve
			a, _ := Generate("#e4572e", 11, true, cfg)
			b, _ := Generate("#e4572e", 11, true, cfg)
			So(a, ShouldResemble, b)
		})

		Convey("Should keep the base color in the middle slot when locked", func() {
			cfg.LockBaseColor = true
			for _, n := range []int{3, 8, 9, 25} {
				steps, _ := Generate("#3366ff", n, true, cfg)
				mid := steps[BaseIndex(n)]
				So(mid.Values.Hex, ShouldEqual, "#3366ff")
				So(mid.IsBaseColor, ShouldBeTrue)
			}
		})

		Convey("Should accept the base color in other notations", func() {
			cfg.LockBaseColor = true
			steps, err := Generate("rgb(51, 102, 255)", 9, true, cfg)
			So(err, ShouldBeNil)
			So(steps[4].Values.Hex, ShouldEqual, "#3366ff")
		})

		Convey("Should walk lightness from the first bound to the second", func() {
			cfg.LockBaseColor = false
			steps, _ := Generate("#3366ff", 9, true, cfg)
			So(steps[0].Values.OKLCH.L, ShouldAlmostEqual, 0.25, 0.01)
			So(steps[8].Values.OKLCH.L, ShouldAlmostEqual, 0.97, 0.01)
			for i := 1; i < len(steps); i++ {
				So(steps[i].Values.OKLCH.L, ShouldBeGreaterThan, steps[i-1].Values.OKLCH.L)
			}
		})

		Convey("Should hold lightness and vary chroma when lightness is not the primary axis", func() {
			cfg.LockBaseColor = false
			cfg.ChromaRange = [2]float64{0, 0.08}
			steps, _ := Generate("#808080", 5, false, cfg)
			for _, s := range steps {
				So(s.Values.OKLCH.L, ShouldAlmostEqual, steps[0].Values.OKLCH.L, 0.01)
			}
			So(steps[0].Values.OKLCH.C, ShouldBeLessThan, 0.01)
			So(steps[4].Values.OKLCH.C, ShouldAlmostEqual, 0.08, 0.01)
		})

		Convey("Should drift hue around the base step", func() {
			cfg.LockBaseColor = false
			cfg.LightnessRange = [2]float64{0.6, 0.6}
			cfg.ChromaRange = [2]float64{0.1, 0.1}
			cfg.HueShift = 60
			steps, _ := Generate("oklch(60% 0.1 300)", 3, true, cfg)
			So(steps[0].Values.OKLCH.H, ShouldAlmostEqual, 270, 1)
			So(steps[1].Values.OKLCH.H, ShouldAlmostEqual, 300, 1)
			So(steps[2].Values.OKLCH.H, ShouldAlmostEqual, 330, 1)
		})

		Convey("Should fall back to linear when the custom array has the wrong length", func() {
			cfg.LockBaseColor = false
			linear, _ := Generate("#3366ff", 9, true, cfg)

			cfg.LightnessDistribution = Custom
			cfg.CustomLightness = []float64{0, 0.5, 1}
			custom, err := Generate("#3366ff", 9, true, cfg)
			So(err, ShouldBeNil)
			So(custom, ShouldResemble, linear)
		})

		Convey("Should read a matching custom array directly", func() {
			cfg.LockBaseColor = false
			cfg.LightnessRange = [2]float64{0, 1}
			cfg.LightnessDistribution = Custom
			cfg.CustomLightness = []float64{0.3, 0.5, 0.9}
			steps, _ := Generate("#3366ff", 3, true, cfg)
			So(steps[0].Values.OKLCH.L, ShouldAlmostEqual, 0.3, 0.01)
			So(steps[2].Values.OKLCH.L, ShouldAlmostEqual, 0.9, 0.01)
		})

		Convey("Should score every step", func() {
			steps, _ := Generate("#3366ff", 9, true, cfg)
			So(steps[0].Accessibility.ContrastWithWhite, ShouldBeGreaterThan, 7)
			So(steps[0].Accessibility.WCAGAAA, ShouldBeTrue)
			So(steps[8].Accessibility.ReadableOn, ShouldEqual, OnBlack)
		})

		Convey("Should name steps by rank and derive stable ids", func() {
			steps, _ := Generate("#3366ff", 9, true, cfg)
			So(steps[0].Name, ShouldEqual, "100")
			So(steps[8].Name, ShouldEqual, "900")
			So(steps[0].ID, ShouldNotEqual, steps[1].ID)
		})

		Convey("Should return a gray fallback and an error for an unparseable color", func() {
			steps, err := Generate("not-a-color", 7, true, cfg)
			So(err, ShouldNotBeNil)
			So(steps, ShouldHaveLength, 7)
			for _, s := range steps {
				So(s.Values.OKLCH.C, ShouldBeLessThan, 0.01)
				So(s.Accessibility, ShouldResemble, Accessibility{})
			}
			So(steps[3].IsBaseColor, ShouldBeTrue)
		})
	})
}

func TestRegenerate(t *testing.T) {
	Convey("Regenerate", t, func() {
		cfg := DefaultConfig()
		base, _ := ParseColor("#3366ff")
		previous := generate(base, 9, true, cfg)

		pink, _ := ParseColor("#ff69b4")
		previous[2] = OverrideStep(previous[2], pink)

		Convey("Should keep overridden steps when the length is unchanged", func() {
			cfg.HueShift = 20
			steps := Regenerate(base, previous, cfg)
			So(steps[2].Values.Hex, ShouldEqual, "#ff69b4")
			So(steps[2].Overridden, ShouldBeTrue)
		})

		Convey("Should drop overrides when the length changes", func() {
			cfg.NumSteps = 11
			steps := Regenerate(base, previous, cfg)
			So(steps, ShouldHaveLength, 11)
			for _, s := range steps {
				So(s.Overridden, ShouldBeFalse)
			}
		})
	})
}

func TestEase(t *testing.T) {
	Convey("Ease", t, func() {
		So(Ease(Linear, 0.25), ShouldEqual, 0.25)
		So(Ease(EaseIn, 0.5), ShouldEqual, 0.125)
		So(Ease(EaseOut, 0.5), ShouldEqual, 0.875)
		So(Ease(SCurve, 0.25), ShouldEqual, 0.0625)
		So(Ease(SCurve, 0.75), ShouldEqual, 0.9375)

		Convey("Should pin the endpoints for every curve", func() {
			for _, d := range []Distribution{Linear, EaseIn, EaseOut, SCurve} {
				So(Ease(d, 0), ShouldEqual, 0)
				So(Ease(d, 1), ShouldEqual, 1)
			}
		})
	})
}

func TestChromaPresets(t *testing.T) {
	Convey("Chroma presets", t, func() {
		cfg := DefaultConfig()
		cfg.LockBaseColor = false
		cfg.LightnessRange = [2]float64{0.6, 0.6}
		cfg.ChromaRange = [2]float64{0.02, 0.12}
		base := "oklch(60% 0.1 250)"

		chromas := func(steps []ColorStep) []float64 {
			out := make([]float64, len(steps))
			for i, s := range steps {
				out[i] = s.Values.OKLCH.C
			}
			return out
		}

		Convey("Should hold chroma at the middle of the range when constant", func() {
			cfg.ChromaMode = ChromaConstant
			steps, _ := Generate(base, 5, true, cfg)
			for _, c := range chromas(steps) {
				So(c, ShouldAlmostEqual, 0.07, 0.006)
			}
		})

		Convey("Should raise chroma with each step when increasing", func() {
			cfg.ChromaMode = ChromaIncrease
			cs := chromas(lo.Must(Generate(base, 5, true, cfg)))
			So(cs[0], ShouldAlmostEqual, 0.02, 0.006)
			So(cs[4], ShouldAlmostEqual, 0.12, 0.006)
			for i := 1; i < len(cs); i++ {
				So(cs[i], ShouldBeGreaterThan, cs[i-1])
			}
		})

		Convey("Should lower chroma with each step when decreasing", func() {
			cfg.ChromaMode = ChromaDecrease
			cs := chromas(lo.Must(Generate(base, 5, true, cfg)))
			So(cs[0], ShouldAlmostEqual, 0.12, 0.006)
			So(cs[4], ShouldAlmostEqual, 0.02, 0.006)
			for i := 1; i < len(cs); i++ {
				So(cs[i], ShouldBeLessThan, cs[i-1])
			}
		})

		Convey("Should ease the chroma ramp with the chroma distribution", func() {
			cfg.ChromaMode = ChromaIncrease
			cfg.ChromaDistribution = EaseIn
			cs := chromas(lo.Must(Generate(base, 3, true, cfg)))
			So(cs[1], ShouldAlmostEqual, 0.0325, 0.006)

			cfg.ChromaDistribution = EaseOut
			cs = chromas(lo.Must(Generate(base, 3, true, cfg)))
			So(cs[1], ShouldAlmostEqual, 0.1075, 0.006)
		})

		Convey("Should read a matching custom chroma array directly", func() {
			cfg.ChromaMode = ChromaCustom
			cfg.CustomChroma = []float64{0, 1, 0.5}
			cs := chromas(lo.Must(Generate(base, 3, true, cfg)))
			So(cs[0], ShouldAlmostEqual, 0.02, 0.006)
			So(cs[1], ShouldAlmostEqual, 0.12, 0.006)
			So(cs[2], ShouldAlmostEqual, 0.07, 0.006)
		})

		Convey("Should fall back to a linear ramp when the custom chroma array has the wrong length", func() {
			cfg.ChromaMode = ChromaIncrease
			linear, _ := Generate(base, 5, true, cfg)

			cfg.ChromaMode = ChromaCustom
			cfg.CustomChroma = []float64{1, 0}
			custom, err := Generate(base, 5, true, cfg)
			So(err, ShouldBeNil)
			So(custom, ShouldResemble, linear)
		})

		Convey("Should ease chroma as the primary axis when lightness is held", func() {
			cfg.ChromaDistribution = EaseIn
			steps, _ := Generate(base, 3, false, cfg)
			for _, s := range steps {
				So(s.Values.OKLCH.L, ShouldAlmostEqual, 0.6, 0.01)
			}
			cs := chromas(steps)
			So(cs[0], ShouldAlmostEqual, 0.02, 0.006)
			So(cs[1], ShouldAlmostEqual, 0.0325, 0.006)
			So(cs[2], ShouldAlmostEqual, 0.12, 0.006)

			cfg.CustomChroma = []float64{0.5, 0.5, 0.5}
			cfg.ChromaDistribution = Custom
			steps, _ = Generate(base, 3, false, cfg)
			for _, c := range chromas(steps) {
				So(c, ShouldAlmostEqual, 0.07, 0.006)
			}
		})

		Convey("Should ease lightness through Generate", func() {
			cfg.LightnessRange = [2]float64{0.3, 0.8}
			cfg.LightnessDistribution = EaseIn
			steps, _ := Generate(base, 3, true, cfg)
			So(steps[1].Values.OKLCH.L, ShouldAlmostEqual, 0.3625, 0.01)

			cfg.LightnessDistribution = EaseOut
			steps, _ = Generate(base, 3, true, cfg)
			So(steps[1].Values.OKLCH.L, ShouldAlmostEqual, 0.7375, 0.01)
		})
	})

	Convey("chromaPositions", t, func() {
		So(chromaPositions(ChromaDecrease, Linear, nil, 3), ShouldResemble, []float64{1, 0.5, 0})
		So(chromaPositions(ChromaIncrease, Linear, nil, 3), ShouldResemble, []float64{0, 0.5, 1})
		So(chromaPositions(ChromaConstant, EaseIn, nil, 3), ShouldResemble, []float64{0.5, 0.5, 0.5})
		So(chromaPositions(ChromaCustom, Linear, []float64{0.2, 0.9}, 2), ShouldResemble, []float64{0.2, 0.9})
		So(chromaPositions(ChromaCustom, Linear, []float64{0.2}, 3), ShouldResemble, []float64{0, 0.5, 1})
	})
}
