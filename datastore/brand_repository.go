package datastore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brandkit/api/models"
	"github.com/brandkit/api/palette"
	"github.com/brandkit/api/typescale"
)

// BrandRepository defines brand persistence. Palette and type-scale
// settings are stored as JSON documents on the brand row.
type BrandRepository interface {
	CreateBrand(brand models.Brand) (models.Brand, error)
	GetBrand(brandID string) (models.Brand, error)
	ListBrands() ([]models.Brand, error)
	UpdateBrand(brandID string, updates models.UpdateBrandRequest) (models.Brand, error)
	UpdatePaletteConfig(brandID string, cfg palette.Config) (models.Brand, error)
	UpdateTypeScale(brandID string, cfg typescale.Config) (models.Brand, error)
	DeleteBrand(brandID string) error
}

// BrandDatabase implements BrandRepository
type BrandDatabase struct {
	database *sql.DB
}

func NewBrandDatabase(db *sql.DB) (BrandDatabase, error) {
	return BrandDatabase{database: db}, nil
}

const brandColumns = `brand_id, name, description, palette_config, type_scale, created_at, updated_at`

func scanBrand(row rowScanner) (models.Brand, error) {
	var brand models.Brand
	var paletteConfig, typeScale []byte
	err := row.Scan(
		&brand.BrandID,
		&brand.Name,
		&brand.Description,
		&paletteConfig,
		&typeScale,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err != nil {
		return models.Brand{}, err
	}
	if err := json.Unmarshal(paletteConfig, &brand.PaletteConfig); err != nil {
		return models.Brand{}, fmt.Errorf("failed to decode palette config: %w", err)
	}
	if err := json.Unmarshal(typeScale, &brand.TypeScale); err != nil {
		return models.Brand{}, fmt.Errorf("failed to decode type scale: %w", err)
	}
	return brand, nil
}

func (bd BrandDatabase) CreateBrand(brand models.Brand) (models.Brand, error) {
	paletteConfig, err := json.Marshal(brand.PaletteConfig)
	if err != nil {
		return models.Brand{}, fmt.Errorf("failed to encode palette config: %w", err)
	}
	typeScale, err := json.Marshal(brand.TypeScale)
	if err != nil {
		return models.Brand{}, fmt.Errorf("failed to encode type scale: %w", err)
	}

	query := `
		INSERT INTO brands (` + brandColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + brandColumns

	created, err := scanBrand(bd.database.QueryRow(
		query,
		brand.BrandID,
		brand.Name,
		brand.Description,
		paletteConfig,
		typeScale,
		brand.CreatedAt,
		brand.UpdatedAt,
	))
	if err != nil {
		return models.Brand{}, fmt.Errorf("failed to create brand: %w", err)
	}
	return created, nil
}

func (bd BrandDatabase) GetBrand(brandID string) (models.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE brand_id = $1`

	brand, err := scanBrand(bd.database.QueryRow(query, brandID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Brand{}, NoRowsError{true, err}
	}
	if err != nil {
		return models.Brand{}, fmt.Errorf("failed to get brand: %w", err)
	}
	return brand, nil
}

func (bd BrandDatabase) ListBrands() ([]models.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands ORDER BY created_at ASC`

	rows, err := bd.database.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		brand, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

// UpdateBrand applies the non-nil fields of updates.
func (bd BrandDatabase) UpdateBrand(brandID string, updates models.UpdateBrandRequest) (models.Brand, error) {
	setClauses := []string{}
	args := []any{}
	argPos := 1

	if updates.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *updates.Name)
		argPos++
	}
	if updates.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *updates.Description)
		argPos++
	}

	if len(setClauses) == 0 {
		return bd.GetBrand(brandID)
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++
	args = append(args, brandID)

	query := fmt.Sprintf(`
		UPDATE brands SET %s
		WHERE brand_id = $%d
		RETURNING %s`, strings.Join(setClauses, ", "), argPos, brandColumns)

	return bd.updateReturning(query, args...)
}

func (bd BrandDatabase) UpdatePaletteConfig(brandID string, cfg palette.Config) (models.Brand, error) {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return models.Brand{}, fmt.Errorf("failed to encode palette config: %w", err)
	}
	query := `
		UPDATE brands SET palette_config = $1, updated_at = $2
		WHERE brand_id = $3
		RETURNING ` + brandColumns
	return bd.updateReturning(query, doc, time.Now().UTC(), brandID)
}

func (bd BrandDatabase) UpdateTypeScale(brandID string, cfg typescale.Config) (models.Brand, error) {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return models.Brand{}, fmt.Errorf("failed to encode type scale: %w", err)
	}
	query := `
		UPDATE brands SET type_scale = $1, updated_at = $2
		WHERE brand_id = $3
		RETURNING ` + brandColumns
	return bd.updateReturning(query, doc, time.Now().UTC(), brandID)
}

func (bd BrandDatabase) updateReturning(query string, args ...any) (models.Brand, error) {
	brand, err := scanBrand(bd.database.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Brand{}, NoRowsError{true, err}
	}
	if err != nil {
		return models.Brand{}, fmt.Errorf("failed to update brand: %w", err)
	}
	return brand, nil
}

// DeleteBrand removes a brand. Palettes and type styles go with it through
// ON DELETE CASCADE.
func (bd BrandDatabase) DeleteBrand(brandID string) error {
	result, err := bd.database.Exec(`DELETE FROM brands WHERE brand_id = $1`, brandID)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return expectAffected(result)
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return NoRowsError{true, sql.ErrNoRows}
	}
	return nil
}
