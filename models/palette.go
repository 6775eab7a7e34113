package models

import (
	"time"

	"github.com/brandkit/api/palette"
	"github.com/google/uuid"
)

// ColorPalette is a generated ramp stored against a brand. Core palettes are
// the brand's primary colors; the rest are accents.
type ColorPalette struct {
	PaletteID string              `json:"paletteId" db:"palette_id"`
	BrandID   string              `json:"brandId" db:"brand_id"`
	Name      string              `json:"name" db:"name"`
	BaseColor palette.ColorValues `json:"baseColor" db:"base_color"`
	Steps     []palette.ColorStep `json:"steps" db:"steps"`
	IsCore    bool                `json:"isCore" db:"is_core"`
	CreatedAt time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time           `json:"updatedAt" db:"updated_at"`
}

type CreatePaletteRequest struct {
	Name      string `json:"name"`
	BaseColor string `json:"baseColor"`
	IsCore    bool   `json:"isCore"`
}

type UpdatePaletteRequest struct {
	Name      *string `json:"name,omitempty"`
	BaseColor *string `json:"baseColor,omitempty"`
	IsCore    *bool   `json:"isCore,omitempty"`
}

// OverrideStepRequest replaces the color of a single step.
type OverrideStepRequest struct {
	Color string `json:"color"`
}

// GeneratePaletteRequest is the body of the stateless palette tool.
type GeneratePaletteRequest struct {
	BaseColor    string          `json:"baseColor"`
	NumSteps     int             `json:"numSteps"`
	UseLightness *bool           `json:"useLightness,omitempty"`
	Config       *palette.Config `json:"config,omitempty"`
}

type GeneratePaletteResponse struct {
	Steps []palette.ColorStep `json:"steps"`
	Fault string              `json:"fault,omitempty"`
}

type GamutResponse struct {
	Color  palette.ColorValues `json:"color"`
	Report palette.GamutReport `json:"report"`
}

// NewPalette generates a palette for brand. The returned error is the
// engine's fault report; the palette is usable either way.
func NewPalette(brand Brand, req CreatePaletteRequest) (ColorPalette, error) {
	cfg := brand.PaletteConfig.Normalize()
	steps, genErr := palette.Generate(req.BaseColor, cfg.NumSteps, cfg.UseLightness, cfg)

	base, err := palette.ParseColor(req.BaseColor)
	if err != nil {
		base = steps[palette.BaseIndex(len(steps))].Values
	}

	now := time.Now().UTC()
	return ColorPalette{
		PaletteID: uuid.New().String(),
		BrandID:   brand.BrandID,
		Name:      req.Name,
		BaseColor: base,
		Steps:     steps,
		IsCore:    req.IsCore,
		CreatedAt: now,
		UpdatedAt: now,
	}, genErr
}

// Regenerate rebuilds the palette's steps under cfg. Unless the config locks
// the base color, the stored base is re-derived from the new base slot.
func (p *ColorPalette) Regenerate(cfg palette.Config) {
	p.Steps = palette.Regenerate(p.BaseColor, p.Steps, cfg)
	if !cfg.LockBaseColor {
		p.BaseColor = p.Steps[palette.BaseIndex(len(p.Steps))].Values
	}
	p.UpdatedAt = time.Now().UTC()
}

type ContrastResponse struct {
	Color         palette.ColorValues   `json:"color"`
	Accessibility palette.Accessibility `json:"accessibility"`
	Against       string                `json:"against,omitempty"`
	Ratio         float64               `json:"ratio,omitempty"`
}

type ConvertResponse struct {
	Input  string         `json:"input"`
	From   palette.Format `json:"from"`
	To     palette.Format `json:"to"`
	Result string         `json:"result"`
}
