package datastore

import (
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	"github.com/brandkit/api/typescale"
)

// MemoryStore keeps brands, palettes and type styles in process memory. It
// implements BrandRepository, PaletteRepository and TypeStyleRepository and
// backs tests and the server's --in-memory mode.
type MemoryStore struct {
	mu       sync.RWMutex
	brands   map[string]models.Brand
	palettes map[string]models.ColorPalette
	styles   map[string]models.TypeStyle
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		brands:   make(map[string]models.Brand),
		palettes: make(map[string]models.ColorPalette),
		styles:   make(map[string]models.TypeStyle),
	}
}

func noRows() error {
	return NoRowsError{true, sql.ErrNoRows}
}

func clonePalette(p models.ColorPalette) models.ColorPalette {
	p.Steps = append([]palette.ColorStep(nil), p.Steps...)
	return p
}

func (m *MemoryStore) CreateBrand(brand models.Brand) (models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.brands[brand.BrandID] = brand
	return brand, nil
}

func (m *MemoryStore) GetBrand(brandID string) (models.Brand, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	brand, ok := m.brands[brandID]
	if !ok {
		return models.Brand{}, noRows()
	}
	return brand, nil
}

func (m *MemoryStore) ListBrands() ([]models.Brand, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	brands := make([]models.Brand, 0, len(m.brands))
	for _, b := range m.brands {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool {
		if brands[i].CreatedAt.Equal(brands[j].CreatedAt) {
			return brands[i].BrandID < brands[j].BrandID
		}
		return brands[i].CreatedAt.Before(brands[j].CreatedAt)
	})
	return brands, nil
}

func (m *MemoryStore) UpdateBrand(brandID string, updates models.UpdateBrandRequest) (models.Brand, error) {
	return m.mutateBrand(brandID, func(b *models.Brand) {
		if updates.Name != nil {
			b.Name = *updates.Name
		}
		if updates.Description != nil {
			b.Description = *updates.Description
		}
	})
}

func (m *MemoryStore) UpdatePaletteConfig(brandID string, cfg palette.Config) (models.Brand, error) {
	return m.mutateBrand(brandID, func(b *models.Brand) { b.PaletteConfig = cfg })
}

func (m *MemoryStore) UpdateTypeScale(brandID string, cfg typescale.Config) (models.Brand, error) {
	return m.mutateBrand(brandID, func(b *models.Brand) { b.TypeScale = cfg })
}

func (m *MemoryStore) mutateBrand(brandID string, fn func(*models.Brand)) (models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	brand, ok := m.brands[brandID]
	if !ok {
		return models.Brand{}, noRows()
	}
	fn(&brand)
	brand.UpdatedAt = time.Now().UTC()
	m.brands[brandID] = brand
	return brand, nil
}

// DeleteBrand cascades to the brand's palettes and styles.
func (m *MemoryStore) DeleteBrand(brandID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.brands[brandID]; !ok {
		return noRows()
	}
	delete(m.brands, brandID)
	for id, p := range m.palettes {
		if p.BrandID == brandID {
			delete(m.palettes, id)
		}
	}
	for id, s := range m.styles {
		if s.BrandID == brandID {
			delete(m.styles, id)
		}
	}
	return nil
}

func (m *MemoryStore) CreatePalette(p models.ColorPalette) (models.ColorPalette, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.brands[p.BrandID]; !ok {
		return models.ColorPalette{}, noRows()
	}
	m.palettes[p.PaletteID] = clonePalette(p)
	return clonePalette(p), nil
}

func (m *MemoryStore) GetPalette(paletteID string) (models.ColorPalette, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.palettes[paletteID]
	if !ok {
		return models.ColorPalette{}, noRows()
	}
	return clonePalette(p), nil
}

func (m *MemoryStore) ListPalettes(brandID string) ([]models.ColorPalette, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	palettes := []models.ColorPalette{}
	for _, p := range m.palettes {
		if p.BrandID == brandID {
			palettes = append(palettes, clonePalette(p))
		}
	}
	sort.Slice(palettes, func(i, j int) bool {
		a, b := palettes[i], palettes[j]
		if a.IsCore != b.IsCore {
			return a.IsCore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.PaletteID < b.PaletteID
	})
	return palettes, nil
}

func (m *MemoryStore) SavePalette(p models.ColorPalette) (models.ColorPalette, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.palettes[p.PaletteID]; !ok {
		return models.ColorPalette{}, noRows()
	}
	m.palettes[p.PaletteID] = clonePalette(p)
	return clonePalette(p), nil
}

func (m *MemoryStore) SavePaletteSteps(p models.ColorPalette, readAt time.Time) (models.ColorPalette, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.palettes[p.PaletteID]
	if !ok || !stored.UpdatedAt.Equal(readAt) {
		return models.ColorPalette{}, ErrPaletteChanged
	}
	stored.BaseColor = p.BaseColor
	stored.Steps = p.Steps
	stored.UpdatedAt = p.UpdatedAt
	m.palettes[p.PaletteID] = clonePalette(stored)
	return clonePalette(stored), nil
}

func (m *MemoryStore) DeletePalette(paletteID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.palettes[paletteID]; !ok {
		return noRows()
	}
	delete(m.palettes, paletteID)
	return nil
}

func (m *MemoryStore) CreateTypeStyle(style models.TypeStyle) (models.TypeStyle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.brands[style.BrandID]; !ok {
		return models.TypeStyle{}, noRows()
	}
	m.styles[style.ID] = style
	return style, nil
}

func (m *MemoryStore) GetTypeStyle(styleID string) (models.TypeStyle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	style, ok := m.styles[styleID]
	if !ok {
		return models.TypeStyle{}, noRows()
	}
	return style, nil
}

func (m *MemoryStore) ListTypeStyles(brandID string) ([]models.TypeStyle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	styles := []models.TypeStyle{}
	for _, s := range m.styles {
		if s.BrandID == brandID {
			styles = append(styles, s)
		}
	}
	sort.Slice(styles, func(i, j int) bool {
		if styles[i].Position != styles[j].Position {
			return styles[i].Position < styles[j].Position
		}
		return styles[i].CreatedAt.Before(styles[j].CreatedAt)
	})
	return styles, nil
}

func (m *MemoryStore) SaveTypeStyle(style models.TypeStyle) (models.TypeStyle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.styles[style.ID]; !ok {
		return models.TypeStyle{}, noRows()
	}
	m.styles[style.ID] = style
	return style, nil
}

func (m *MemoryStore) DeleteTypeStyle(styleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.styles[styleID]; !ok {
		return noRows()
	}
	delete(m.styles, styleID)
	return nil
}

func (m *MemoryStore) ReorderTypeStyles(brandID string, styleIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := 0
	for _, s := range m.styles {
		if s.BrandID == brandID {
			owned++
		}
	}
	seen := make(map[string]bool, len(styleIDs))
	for _, id := range styleIDs {
		s, ok := m.styles[id]
		if !ok || s.BrandID != brandID || seen[id] {
			return ErrStyleSetMismatch
		}
		seen[id] = true
	}
	if owned != len(styleIDs) {
		return ErrStyleSetMismatch
	}

	now := time.Now().UTC()
	for position, id := range styleIDs {
		s := m.styles[id]
		s.Position = position
		s.UpdatedAt = now
		m.styles[id] = s
	}
	return nil
}

var (
	_ BrandRepository     = (*MemoryStore)(nil)
	_ PaletteRepository   = (*MemoryStore)(nil)
	_ TypeStyleRepository = (*MemoryStore)(nil)
	_ BrandRepository     = BrandDatabase{}
	_ PaletteRepository   = PaletteDatabase{}
	_ TypeStyleRepository = TypeStyleDatabase{}
)
