package models

import (
	"time"

	"github.com/brandkit/api/typescale"
	"github.com/google/uuid"
)

// TypeStyle is a stored style. Position only orders styles for display.
type TypeStyle struct {
	typescale.TypeStyle
	BrandID   string    `json:"brandId" db:"brand_id"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateTypeStyleRequest struct {
	Name          string  `json:"name"`
	ScaleStep     string  `json:"scaleStep"`
	FontWeight    int     `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
	LetterSpacing float64 `json:"letterSpacing"`
	OpticalSize   float64 `json:"opticalSize"`
}

type UpdateTypeStyleRequest struct {
	Name          *string  `json:"name,omitempty"`
	ScaleStep     *string  `json:"scaleStep,omitempty"`
	FontWeight    *int     `json:"fontWeight,omitempty"`
	LineHeight    *float64 `json:"lineHeight,omitempty"`
	LetterSpacing *float64 `json:"letterSpacing,omitempty"`
	OpticalSize   *float64 `json:"opticalSize,omitempty"`
}

// ReorderTypeStylesRequest lists every style id of a brand in display order.
type ReorderTypeStylesRequest struct {
	StyleIDs []string `json:"styleIds"`
}

type TypeScaleResponse struct {
	Config   typescale.Config       `json:"config"`
	BaseSize float64                `json:"baseSize"`
	Values   []typescale.ScaleValue `json:"values"`
}

type DistanceSizeResponse struct {
	Params   typescale.DistanceParams `json:"params"`
	BaseSize float64                  `json:"baseSize"`
}

// ResolvedTypeStyle is a stored style with its size looked up in the
// brand's current scale.
type ResolvedTypeStyle struct {
	TypeStyle
	Size    float64 `json:"size"`
	Missing bool    `json:"missing,omitempty"`
}

func NewTypeStyle(brandID string, position int, req CreateTypeStyleRequest) TypeStyle {
	now := time.Now().UTC()
	style := TypeStyle{
		TypeStyle: typescale.TypeStyle{
			ID:            uuid.New().String(),
			Name:          req.Name,
			ScaleStep:     req.ScaleStep,
			FontWeight:    req.FontWeight,
			LineHeight:    req.LineHeight,
			LetterSpacing: req.LetterSpacing,
			OpticalSize:   req.OpticalSize,
		},
		BrandID:   brandID,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if style.FontWeight == 0 {
		style.FontWeight = 400
	}
	if style.LineHeight == 0 {
		style.LineHeight = 1.5
	}
	return style
}

// Duplicate copies s under a new id at position.
func (s TypeStyle) Duplicate(position int) TypeStyle {
	now := time.Now().UTC()
	dup := s
	dup.ID = uuid.New().String()
	dup.Name = s.Name + " copy"
	dup.Position = position
	dup.CreatedAt = now
	dup.UpdatedAt = now
	return dup
}

// ResolveTypeStyles attaches sizes from values to stored styles.
func ResolveTypeStyles(styles []TypeStyle, values []typescale.ScaleValue) []ResolvedTypeStyle {
	plain := make([]typescale.TypeStyle, len(styles))
	for i, s := range styles {
		plain[i] = s.TypeStyle
	}
	resolved := typescale.Resolve(plain, values)

	out := make([]ResolvedTypeStyle, len(styles))
	for i, r := range resolved {
		out[i] = ResolvedTypeStyle{TypeStyle: styles[i], Size: r.Size, Missing: r.Missing}
	}
	return out
}
