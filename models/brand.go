package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/brandkit/api/palette"
	"github.com/brandkit/api/typescale"
	"github.com/google/uuid"
)

// Brand owns a set of palettes, a type scale and the type styles built on it.
type Brand struct {
	BrandID       string           `json:"brandId" db:"brand_id"`
	Name          string           `json:"name" db:"name"`
	Description   string           `json:"description" db:"description"`
	PaletteConfig palette.Config   `json:"paletteConfig" db:"palette_config"`
	TypeScale     typescale.Config `json:"typeScale" db:"type_scale"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
}

type CreateBrandRequest struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	PaletteConfig *palette.Config   `json:"paletteConfig,omitempty"`
	TypeScale     *typescale.Config `json:"typeScale,omitempty"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (brand Brand) Serialize() ([]byte, error) {
	jsonBrand, err := json.Marshal(brand)
	if err != nil {
		return []byte{}, fmt.Errorf("error parsing json for Brand %v", err)
	}
	return jsonBrand, nil
}

// NewBrand builds a brand with default palette and scale settings unless
// the request carries its own.
func NewBrand(req CreateBrandRequest) Brand {
	now := time.Now().UTC()
	brand := Brand{
		BrandID:       uuid.New().String(),
		Name:          req.Name,
		Description:   req.Description,
		PaletteConfig: palette.DefaultConfig(),
		TypeScale:     typescale.DefaultConfig(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.PaletteConfig != nil {
		brand.PaletteConfig = req.PaletteConfig.Normalize()
	}
	if req.TypeScale != nil {
		brand.TypeScale = *req.TypeScale
	}
	return brand
}
