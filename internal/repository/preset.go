package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/mypass/mypass-go/internal/model"
)

var (
	ErrPresetNotFound      = errors.New("preset not found")
	ErrDuplicatePresetName = errors.New("preset name already exists")
)

// PresetRepository handles generation preset persistence operations.
type PresetRepository struct {
	db *sql.DB
}

// NewPresetRepository creates a new PresetRepository.
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

const presetColumns = `id, user_id, name, length, uppercase, lowercase, numbers, symbols, exclude_chars, created_at, updated_at`

// Create inserts a new preset, assigning a random UUID when the ID is empty.
func (r *PresetRepository) Create(ctx context.Context, p *model.Preset) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `INSERT INTO presets (id, user_id, name, length, uppercase, lowercase, numbers, symbols, exclude_chars)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Name, p.Length,
		p.Uppercase, p.Lowercase, p.Numbers, p.Symbols, p.Exclude,
	)
	if isDuplicateEntryError(err) {
		return ErrDuplicatePresetName
	}
	return err
}

// GetByID retrieves a preset owned by the given user.
func (r *PresetRepository) GetByID(ctx context.Context, userID int64, id string) (*model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE user_id = ? AND id = ?`

	p, err := scanPreset(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	return p, nil
}

// ListByUser retrieves all presets for a user, ordered by name.
func (r *PresetRepository) ListByUser(ctx context.Context, userID int64) ([]model.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE user_id = ? ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []model.Preset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, *p)
	}

	return presets, rows.Err()
}

// Update replaces the name and options of an existing preset. Callers check existence first.
func (r *PresetRepository) Update(ctx context.Context, p *model.Preset) error {
	query := `UPDATE presets SET name = ?, length = ?, uppercase = ?, lowercase = ?, numbers = ?, symbols = ?, exclude_chars = ?
		WHERE user_id = ? AND id = ?`

	_, err := r.db.ExecContext(ctx, query,
		p.Name, p.Length, p.Uppercase, p.Lowercase, p.Numbers, p.Symbols, p.Exclude,
		p.UserID, p.ID,
	)
	if isDuplicateEntryError(err) {
		return ErrDuplicatePresetName
	}
	return err
}

// Delete removes a preset.
func (r *PresetRepository) Delete(ctx context.Context, userID int64, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}

	return requireRow(result, ErrPresetNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPreset(row rowScanner) (*model.Preset, error) {
	p := &model.Preset{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Length,
		&p.Uppercase, &p.Lowercase, &p.Numbers, &p.Symbols, &p.Exclude,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// requireRow returns notFound when the statement touched no rows.
func requireRow(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
