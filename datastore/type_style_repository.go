package datastore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brandkit/api/models"
	"github.com/lib/pq"
)

// ErrStyleSetMismatch is returned by ReorderTypeStyles when the given ids
// are not exactly the brand's styles.
var ErrStyleSetMismatch = errors.New("style ids do not match the brand's type styles")

type TypeStyleRepository interface {
	CreateTypeStyle(style models.TypeStyle) (models.TypeStyle, error)
	GetTypeStyle(styleID string) (models.TypeStyle, error)
	ListTypeStyles(brandID string) ([]models.TypeStyle, error)
	SaveTypeStyle(style models.TypeStyle) (models.TypeStyle, error)
	DeleteTypeStyle(styleID string) error
	ReorderTypeStyles(brandID string, styleIDs []string) error
}

// TypeStyleDatabase implements TypeStyleRepository
type TypeStyleDatabase struct {
	database *sql.DB
}

func NewTypeStyleDatabase(db *sql.DB) (TypeStyleDatabase, error) {
	return TypeStyleDatabase{database: db}, nil
}

const typeStyleColumns = `style_id, brand_id, name, scale_step, font_weight, line_height,
	letter_spacing, optical_size, position, created_at, updated_at`

func scanTypeStyle(row rowScanner) (models.TypeStyle, error) {
	var s models.TypeStyle
	err := row.Scan(
		&s.ID,
		&s.BrandID,
		&s.Name,
		&s.ScaleStep,
		&s.FontWeight,
		&s.LineHeight,
		&s.LetterSpacing,
		&s.OpticalSize,
		&s.Position,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

func (td TypeStyleDatabase) CreateTypeStyle(style models.TypeStyle) (models.TypeStyle, error) {
	query := `
		INSERT INTO type_styles (` + typeStyleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + typeStyleColumns

	created, err := scanTypeStyle(td.database.QueryRow(
		query,
		style.ID,
		style.BrandID,
		style.Name,
		style.ScaleStep,
		style.FontWeight,
		style.LineHeight,
		style.LetterSpacing,
		style.OpticalSize,
		style.Position,
		style.CreatedAt,
		style.UpdatedAt,
	))
	if err != nil {
		return models.TypeStyle{}, fmt.Errorf("failed to create type style: %w", err)
	}
	return created, nil
}

func (td TypeStyleDatabase) GetTypeStyle(styleID string) (models.TypeStyle, error) {
	query := `SELECT ` + typeStyleColumns + ` FROM type_styles WHERE style_id = $1`

	style, err := scanTypeStyle(td.database.QueryRow(query, styleID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TypeStyle{}, NoRowsError{true, err}
	}
	if err != nil {
		return models.TypeStyle{}, fmt.Errorf("failed to get type style: %w", err)
	}
	return style, nil
}

func (td TypeStyleDatabase) ListTypeStyles(brandID string) ([]models.TypeStyle, error) {
	query := `
		SELECT ` + typeStyleColumns + `
		FROM type_styles
		WHERE brand_id = $1
		ORDER BY position ASC, created_at ASC`

	rows, err := td.database.Query(query, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list type styles: %w", err)
	}
	defer rows.Close()

	styles := []models.TypeStyle{}
	for rows.Next() {
		style, err := scanTypeStyle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan type style: %w", err)
		}
		styles = append(styles, style)
	}
	return styles, rows.Err()
}

func (td TypeStyleDatabase) SaveTypeStyle(style models.TypeStyle) (models.TypeStyle, error) {
	query := `
		UPDATE type_styles
		SET name = $1, scale_step = $2, font_weight = $3, line_height = $4,
			letter_spacing = $5, optical_size = $6, position = $7, updated_at = $8
		WHERE style_id = $9
		RETURNING ` + typeStyleColumns

	saved, err := scanTypeStyle(td.database.QueryRow(
		query,
		style.Name,
		style.ScaleStep,
		style.FontWeight,
		style.LineHeight,
		style.LetterSpacing,
		style.OpticalSize,
		style.Position,
		style.UpdatedAt,
		style.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TypeStyle{}, NoRowsError{true, err}
	}
	if err != nil {
		return models.TypeStyle{}, fmt.Errorf("failed to save type style: %w", err)
	}
	return saved, nil
}

func (td TypeStyleDatabase) DeleteTypeStyle(styleID string) error {
	result, err := td.database.Exec(`DELETE FROM type_styles WHERE style_id = $1`, styleID)
	if err != nil {
		return fmt.Errorf("failed to delete type style: %w", err)
	}
	return expectAffected(result)
}

// ReorderTypeStyles assigns positions 0..n-1 in the order of styleIDs. The
// ids must be exactly the brand's current styles.
func (td TypeStyleDatabase) ReorderTypeStyles(brandID string, styleIDs []string) error {
	tx, err := td.database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reorder: %w", err)
	}
	defer tx.Rollback()

	var matched int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM type_styles WHERE brand_id = $1 AND style_id = ANY($2)`,
		brandID, pq.Array(styleIDs),
	).Scan(&matched)
	if err != nil {
		return fmt.Errorf("failed to check type styles: %w", err)
	}

	var total int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM type_styles WHERE brand_id = $1`, brandID).Scan(&total); err != nil {
		return fmt.Errorf("failed to count type styles: %w", err)
	}
	if matched != len(styleIDs) || total != len(styleIDs) {
		return ErrStyleSetMismatch
	}

	now := time.Now().UTC()
	for position, id := range styleIDs {
		_, err := tx.Exec(
			`UPDATE type_styles SET position = $1, updated_at = $2 WHERE style_id = $3`,
			position, now, id,
		)
		if err != nil {
			return fmt.Errorf("failed to move type style %s: %w", id, err)
		}
	}

	return tx.Commit()
}
