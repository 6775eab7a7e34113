package datastore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/brandkit/api/models"
)

// ErrPaletteChanged is returned by SavePaletteSteps when the palette was
// written by someone else after it was read.
var ErrPaletteChanged = errors.New("palette changed since it was read")

// PaletteRepository defines palette persistence. Steps are stored as a
// single JSON array so a regenerated palette is written in one statement.
type PaletteRepository interface {
	CreatePalette(p models.ColorPalette) (models.ColorPalette, error)
	GetPalette(paletteID string) (models.ColorPalette, error)
	ListPalettes(brandID string) ([]models.ColorPalette, error)
	SavePalette(p models.ColorPalette) (models.ColorPalette, error)
	SavePaletteSteps(p models.ColorPalette, readAt time.Time) (models.ColorPalette, error)
	DeletePalette(paletteID string) error
}

// PaletteDatabase implements PaletteRepository
type PaletteDatabase struct {
	database *sql.DB
}

func NewPaletteDatabase(db *sql.DB) (PaletteDatabase, error) {
	return PaletteDatabase{database: db}, nil
}

const paletteColumns = `palette_id, brand_id, name, base_color, steps, is_core, created_at, updated_at`

func scanPalette(row rowScanner) (models.ColorPalette, error) {
	var p models.ColorPalette
	var baseColor, steps []byte
	err := row.Scan(
		&p.PaletteID,
		&p.BrandID,
		&p.Name,
		&baseColor,
		&steps,
		&p.IsCore,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.ColorPalette{}, err
	}
	if err := json.Unmarshal(baseColor, &p.BaseColor); err != nil {
		return models.ColorPalette{}, fmt.Errorf("failed to decode base color: %w", err)
	}
	if err := json.Unmarshal(steps, &p.Steps); err != nil {
		return models.ColorPalette{}, fmt.Errorf("failed to decode steps: %w", err)
	}
	return p, nil
}

func encodePalette(p models.ColorPalette) (baseColor, steps []byte, err error) {
	if baseColor, err = json.Marshal(p.BaseColor); err != nil {
		return nil, nil, fmt.Errorf("failed to encode base color: %w", err)
	}
	if steps, err = json.Marshal(p.Steps); err != nil {
		return nil, nil, fmt.Errorf("failed to encode steps: %w", err)
	}
	return baseColor, steps, nil
}

func (pd PaletteDatabase) CreatePalette(p models.ColorPalette) (models.ColorPalette, error) {
	baseColor, steps, err := encodePalette(p)
	if err != nil {
		return models.ColorPalette{}, err
	}

	query := `
		INSERT INTO palettes (` + paletteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + paletteColumns

	created, err := scanPalette(pd.database.QueryRow(
		query,
		p.PaletteID,
		p.BrandID,
		p.Name,
		baseColor,
		steps,
		p.IsCore,
		p.CreatedAt,
		p.UpdatedAt,
	))
	if err != nil {
		return models.ColorPalette{}, fmt.Errorf("failed to create palette: %w", err)
	}
	return created, nil
}

func (pd PaletteDatabase) GetPalette(paletteID string) (models.ColorPalette, error) {
	query := `SELECT ` + paletteColumns + ` FROM palettes WHERE palette_id = $1`

	p, err := scanPalette(pd.database.QueryRow(query, paletteID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ColorPalette{}, NoRowsError{true, err}
	}
	if err != nil {
		return models.ColorPalette{}, fmt.Errorf("failed to get palette: %w", err)
	}
	return p, nil
}

// ListPalettes returns core palettes first, then accents, oldest first.
func (pd PaletteDatabase) ListPalettes(brandID string) ([]models.ColorPalette, error) {
	query := `
		SELECT ` + paletteColumns + `
		FROM palettes
		WHERE brand_id = $1
		ORDER BY is_core DESC, created_at ASC`

	rows, err := pd.database.Query(query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	defer rows.Close()

	palettes := []models.ColorPalette{}
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan palette: %w", err)
		}
		palettes = append(palettes, p)
	}
	return palettes, rows.Err()
}

// SavePalette overwrites every mutable column of p.
func (pd PaletteDatabase) SavePalette(p models.ColorPalette) (models.ColorPalette, error) {
	baseColor, steps, err := encodePalette(p)
	if err != nil {
		return models.ColorPalette{}, err
	}

	query := `
		UPDATE palettes
		SET name = $1, base_color = $2, steps = $3, is_core = $4, updated_at = $5
		WHERE palette_id = $6
		RETURNING ` + paletteColumns

	saved, err := scanPalette(pd.database.QueryRow(query, p.Name, baseColor, steps, p.IsCore, p.UpdatedAt, p.PaletteID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ColorPalette{}, NoRowsError{true, err}
	}
	if err != nil {
		return models.ColorPalette{}, fmt.Errorf("failed to save palette: %w", err)
	}
	return saved, nil
}

// SavePaletteSteps writes only the base color and steps of p, and only if
// the row still carries the updated_at it had when read. A missing or
// changed row gives ErrPaletteChanged.
func (pd PaletteDatabase) SavePaletteSteps(p models.ColorPalette, readAt time.Time) (models.ColorPalette, error) {
	baseColor, steps, err := encodePalette(p)
	if err != nil {
		return models.ColorPalette{}, err
	}

	query := `
		UPDATE palettes
		SET base_color = $1, steps = $2, updated_at = $3
		WHERE palette_id = $4 AND updated_at = $5
		RETURNING ` + paletteColumns

	saved, err := scanPalette(pd.database.QueryRow(query, baseColor, steps, p.UpdatedAt, p.PaletteID, readAt))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ColorPalette{}, ErrPaletteChanged
	}
	if err != nil {
		return models.ColorPalette{}, fmt.Errorf("failed to save palette steps: %w", err)
	}
	return saved, nil
}

func (pd PaletteDatabase) DeletePalette(paletteID string) error {
	result, err := pd.database.Exec(`DELETE FROM palettes WHERE palette_id = $1`, paletteID)
	if err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	return expectAffected(result)
}
