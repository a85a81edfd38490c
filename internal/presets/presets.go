// Package presets stores named reference scenarios in the database.
// Presets seed the calculator form with defaults; they are the only
// thing persisted about parameters, never the results of a run.
package presets

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atomcost/lcoe/internal/lcoe"
)

// ErrNotFound is returned when no preset has the requested id.
var ErrNotFound = errors.New("preset not found")

// Preset is a named, editable parameter set.
type Preset struct {
	ID       int64
	Name     string
	Notes    string
	Scenario lcoe.Scenario
	Active   bool
}

// ParamsJSON renders the preset's scenario as indented JSON for the
// admin edit form.
func (p Preset) ParamsJSON() string {
	out, err := json.MarshalIndent(p.Scenario, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}

// Store provides preset persistence on top of *sql.DB.
type Store struct {
	db *sql.DB
}

// NewStore wraps the given database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// List returns all presets, newest first.
func (s *Store) List() ([]Preset, error) {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(notes, ''), params_json, active
		FROM presets
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query presets: %w", err)
	}
	defer rows.Close()

	presets := make([]Preset, 0)
	for rows.Next() {
		p, err := scanPreset(rows.Scan)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}

	return presets, nil
}

// Get returns one preset by id, or ErrNotFound.
func (s *Store) Get(id int64) (Preset, error) {
	row := s.db.QueryRow(`
		SELECT id, name, COALESCE(notes, ''), params_json, active
		FROM presets
		WHERE id = ?
	`, id)

	p, err := scanPreset(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, ErrNotFound
	}
	if err != nil {
		return Preset{}, err
	}
	return p, nil
}

// Create inserts a preset and returns its id.
func (s *Store) Create(p Preset) (int64, error) {
	params, err := json.Marshal(p.Scenario)
	if err != nil {
		return 0, fmt.Errorf("marshal preset params: %w", err)
	}

	result, err := s.db.Exec(`
		INSERT INTO presets (name, notes, params_json, active)
		VALUES (?, ?, ?, ?)
	`, p.Name, p.Notes, string(params), p.Active)
	if err != nil {
		return 0, fmt.Errorf("insert preset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("preset insert id: %w", err)
	}
	return id, nil
}

// Update overwrites a preset in place, or returns ErrNotFound.
func (s *Store) Update(p Preset) error {
	params, err := json.Marshal(p.Scenario)
	if err != nil {
		return fmt.Errorf("marshal preset params: %w", err)
	}

	result, err := s.db.Exec(`
		UPDATE presets
		SET
			name = ?,
			notes = ?,
			params_json = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.Name, p.Notes, string(params), p.Active, p.ID)
	if err != nil {
		return fmt.Errorf("update preset: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update preset rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPreset(scan func(dest ...any) error) (Preset, error) {
	var p Preset
	var paramsJSON string
	if err := scan(&p.ID, &p.Name, &p.Notes, &paramsJSON, &p.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Preset{}, err
		}
		return Preset{}, fmt.Errorf("scan preset: %w", err)
	}
	if err := json.Unmarshal([]byte(paramsJSON), &p.Scenario); err != nil {
		return Preset{}, fmt.Errorf("decode preset params: %w", err)
	}
	return p, nil
}
