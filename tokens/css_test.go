package tokens

import (
	"strings"
	"testing"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/typescale"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCSS(t *testing.T) {
	Convey("CSS", t, func() {
		brand := models.NewBrand(models.CreateBrandRequest{Name: "Acme"})
		primary, err := models.NewPalette(brand, models.CreatePaletteRequest{Name: "Brand Blue", BaseColor: "#3366ff"})
		So(err, ShouldBeNil)
		scale := typescale.ScaleValues(16, 1.25, 2, 1)
		styles := []models.TypeStyle{
			models.NewTypeStyle(brand.BrandID, 0, models.CreateTypeStyleRequest{Name: "Body", ScaleStep: "f0"}),
			models.NewTypeStyle(brand.BrandID, 1, models.CreateTypeStyleRequest{Name: "Hero", ScaleStep: "f9", FontWeight: 800, OpticalSize: 72}),
		}

		css := CSS(brand, []models.ColorPalette{primary}, scale, styles)

		Convey("Should wrap everything in :root", func() {
			So(css, ShouldStartWith, "/* Acme design tokens */\n:root {\n")
			So(css, ShouldEndWith, "}\n")
		})

		Convey("Should emit one hex and one oklch property per step", func() {
			So(strings.Count(css, "--brand-blue-"), ShouldEqual, 2*len(primary.Steps))
			So(css, ShouldContainSubstring, "  --brand-blue-500: #3366ff;\n")
			So(css, ShouldContainSubstring, "--brand-blue-500-oklch: oklch(")
		})

		Convey("Should emit sizes in px and rem", func() {
			So(css, ShouldContainSubstring, "  --font-size-f0: 16px;\n")
			So(css, ShouldContainSubstring, "  --font-size-f0-rem: 1rem;\n")
			So(css, ShouldContainSubstring, "  --font-size-f-1: 13px;\n")
			So(css, ShouldContainSubstring, "  --font-size-f-1-rem: 0.8125rem;\n")
		})

		Convey("Should reference scale sizes from styles", func() {
			So(css, ShouldContainSubstring, "  --type-body-size: var(--font-size-f0);\n")
			So(css, ShouldContainSubstring, "  --type-body-weight: 400;\n")
			So(css, ShouldContainSubstring, "  --type-body-line-height: 1.5;\n")
			So(css, ShouldNotContainSubstring, "--type-body-optical-size")
		})

		Convey("Should flag styles whose step left the scale", func() {
			So(css, ShouldContainSubstring, "/* Hero: scale step f9 is not in the current scale */")
			So(css, ShouldNotContainSubstring, "--type-hero-size")
			So(css, ShouldContainSubstring, "  --type-hero-optical-size: 72;\n")
		})

		Convey("Should be deterministic", func() {
			So(CSS(brand, []models.ColorPalette{primary}, scale, styles), ShouldEqual, css)
		})
	})

	Convey("slug", t, func() {
		s := newSlugger()
		So(s.slug("Brand Blue!", "x"), ShouldEqual, "brand-blue")
		So(s.slug("brand  blue", "x"), ShouldEqual, "brand-blue-2")
		So(s.slug("***", "palette"), ShouldEqual, "palette")
		So(s.slug("Neutral 02", "x"), ShouldEqual, "neutral-02")

		Convey("Should not hand out a suffixed slug twice", func() {
			s := newSlugger()
			So(s.slug("Blue", "x"), ShouldEqual, "blue")
			So(s.slug("Blue", "x"), ShouldEqual, "blue-2")
			So(s.slug("Blue 2", "x"), ShouldEqual, "blue-2-2")
			So(s.slug("blue", "x"), ShouldEqual, "blue-3")
			So(s.slug("Blue 3", "x"), ShouldEqual, "blue-3-2")
		})
	})

	Convey("CSS with colliding palette names", t, func() {
		brand := models.NewBrand(models.CreateBrandRequest{Name: "Acme"})
		var palettes []models.ColorPalette
		for _, p := range []struct{ name, base string }{{"Blue", "#3366ff"}, {"Blue", "#0033a0"}, {"Blue 2", "#470000"}} {
			cp, err := models.NewPalette(brand, models.CreatePaletteRequest{Name: p.name, BaseColor: p.base})
			So(err, ShouldBeNil)
			palettes = append(palettes, cp)
		}

		css := CSS(brand, palettes, nil, nil)
		seen := map[string]bool{}
		for _, line := range strings.Split(css, "\n") {
			prop, _, ok := strings.Cut(strings.TrimSpace(line), ":")
			if !ok || !strings.HasPrefix(prop, "--") {
				continue
			}
			So(seen[prop], ShouldBeFalse)
			seen[prop] = true
		}
		So(seen["--blue-500"], ShouldBeTrue)
		So(seen["--blue-2-500"], ShouldBeTrue)
		So(seen["--blue-2-2-500"], ShouldBeTrue)
	})
}
