package datastore

import (
	"errors"
	"testing"
	"time"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("MemoryStore", t, func() {
		store := NewMemoryStore()
		brand, err := store.CreateBrand(models.NewBrand(models.CreateBrandRequest{Name: "Acme"}))
		So(err, ShouldBeNil)

		Convey("Should report misses as NoRowsError", func() {
			_, err := store.GetBrand("missing")
			var nr NoRowsError
			So(errors.As(err, &nr), ShouldBeTrue)
			So(store.DeletePalette("missing"), ShouldNotBeNil)
		})

		Convey("Should apply partial brand updates", func() {
			name := "Acme Corp"
			updated, err := store.UpdateBrand(brand.BrandID, models.UpdateBrandRequest{Name: &name})
			So(err, ShouldBeNil)
			So(updated.Name, ShouldEqual, "Acme Corp")
			So(updated.PaletteConfig, ShouldResemble, palette.DefaultConfig())
		})

		Convey("Should list core palettes first", func() {
			accent, _ := models.NewPalette(brand, models.CreatePaletteRequest{Name: "Accent", BaseColor: "#ff8800"})
			core, _ := models.NewPalette(brand, models.CreatePaletteRequest{Name: "Primary", BaseColor: "#3366ff", IsCore: true})
			core.CreatedAt = accent.CreatedAt.Add(time.Second)
			_, err := store.CreatePalette(accent)
			So(err, ShouldBeNil)
			_, err = store.CreatePalette(core)
			So(err, ShouldBeNil)

			palettes, err := store.ListPalettes(brand.BrandID)
			So(err, ShouldBeNil)
			So(palettes, ShouldHaveLength, 2)
			So(palettes[0].Name, ShouldEqual, "Primary")
		})

		Convey("Should not share step slices with callers", func() {
			p, _ := models.NewPalette(brand, models.CreatePaletteRequest{Name: "Primary", BaseColor: "#3366ff"})
			_, _ = store.CreatePalette(p)
			p.Steps[0].Name = "changed"
			stored, _ := store.GetPalette(p.PaletteID)
			So(stored.Steps[0].Name, ShouldEqual, "100")
		})

		Convey("Should save steps only over an unchanged palette", func() {
			p, _ := models.NewPalette(brand, models.CreatePaletteRequest{Name: "Primary", BaseColor: "#3366ff"})
			_, _ = store.CreatePalette(p)
			readAt := p.UpdatedAt

			renamed := p
			renamed.Name = "Renamed"
			renamed.UpdatedAt = readAt.Add(time.Second)
			_, err := store.SavePalette(renamed)
			So(err, ShouldBeNil)

			regenerated := p
			regenerated.Steps = regenerated.Steps[:3]
			regenerated.UpdatedAt = readAt.Add(2 * time.Second)
			_, err = store.SavePaletteSteps(regenerated, readAt)
			So(err, ShouldEqual, ErrPaletteChanged)

			saved, err := store.SavePaletteSteps(regenerated, renamed.UpdatedAt)
			So(err, ShouldBeNil)
			So(saved.Name, ShouldEqual, "Renamed")
			So(saved.Steps, ShouldHaveLength, 3)

			_, err = store.SavePaletteSteps(models.ColorPalette{PaletteID: "missing"}, readAt)
			So(err, ShouldEqual, ErrPaletteChanged)
		})

		Convey("Should reorder only the exact set of a brand's styles", func() {
			a, _ := store.CreateTypeStyle(models.NewTypeStyle(brand.BrandID, 0, models.CreateTypeStyleRequest{Name: "Body", ScaleStep: "f0"}))
			b, _ := store.CreateTypeStyle(models.NewTypeStyle(brand.BrandID, 1, models.CreateTypeStyleRequest{Name: "Heading", ScaleStep: "f3"}))

			So(store.ReorderTypeStyles(brand.BrandID, []string{b.ID}), ShouldEqual, ErrStyleSetMismatch)
			So(store.ReorderTypeStyles(brand.BrandID, []string{b.ID, b.ID}), ShouldEqual, ErrStyleSetMismatch)
			So(store.ReorderTypeStyles(brand.BrandID, []string{b.ID, a.ID}), ShouldBeNil)

			styles, _ := store.ListTypeStyles(brand.BrandID)
			So(styles[0].Name, ShouldEqual, "Heading")
			So(styles[1].Position, ShouldEqual, 1)
		})

		Convey("Should cascade brand deletes", func() {
			p, _ := models.NewPalette(brand, models.CreatePaletteRequest{Name: "Primary", BaseColor: "#3366ff"})
			_, _ = store.CreatePalette(p)
			So(store.DeleteBrand(brand.BrandID), ShouldBeNil)
			_, err := store.GetPalette(p.PaletteID)
			So(err, ShouldNotBeNil)
		})
	})
}
