package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/utils/markdown"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrPresetExists   = errors.New("preset name already exists")
	ErrSchemaMissing  = errors.New("preset schema missing, run migrations")
)

const presetColumns = `id, name, description, spec, created_at, updated_at`

type CreatePresetParams struct {
	Name        string
	Description string
	Spec        ffmpeg.ExportSpec
}

type UpdatePresetParams struct {
	ID          uuid.UUID
	Name        string
	Description string
	Spec        ffmpeg.ExportSpec
}

func scanPreset(row pgx.Row) (*FilterPreset, error) {
	var p FilterPreset
	var spec []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &spec, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	if err := json.Unmarshal(spec, &p.Spec); err != nil {
		return nil, fmt.Errorf("decode preset spec: %w", err)
	}
	return &p, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrPresetNotFound
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrPresetExists, err)
	case IsUndefinedColumnErr(err):
		return fmt.Errorf("%w: %w", ErrSchemaMissing, err)
	}
	return err
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

const createPreset = `INSERT INTO filter_presets (id, name, description, spec)
VALUES ($1, $2, $3, $4)
RETURNING ` + presetColumns

// CreatePreset stores a new preset under a fresh ID.
func (q *Queries) CreatePreset(ctx context.Context, arg CreatePresetParams) (*FilterPreset, error) {
	spec, err := json.Marshal(arg.Spec)
	if err != nil {
		return nil, fmt.Errorf("encode preset spec: %w", err)
	}
	row := q.db.QueryRow(ctx, createPreset,
		pgUUID(uuid.New()), arg.Name, markdown.Markdown{Source: arg.Description}, spec)
	return scanPreset(row)
}

const getPreset = `SELECT ` + presetColumns + ` FROM filter_presets WHERE id = $1`

func (q *Queries) GetPreset(ctx context.Context, id uuid.UUID) (*FilterPreset, error) {
	return scanPreset(q.db.QueryRow(ctx, getPreset, pgUUID(id)))
}

const getPresetByName = `SELECT ` + presetColumns + ` FROM filter_presets WHERE name = $1`

func (q *Queries) GetPresetByName(ctx context.Context, name string) (*FilterPreset, error) {
	return scanPreset(q.db.QueryRow(ctx, getPresetByName, name))
}

const listPresets = `SELECT ` + presetColumns + ` FROM filter_presets ORDER BY name`

func (q *Queries) ListPresets(ctx context.Context) ([]*FilterPreset, error) {
	rows, err := q.db.Query(ctx, listPresets)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []*FilterPreset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updatePreset = `UPDATE filter_presets
SET name = $2, description = $3, spec = $4
WHERE id = $1
RETURNING ` + presetColumns

func (q *Queries) UpdatePreset(ctx context.Context, arg UpdatePresetParams) (*FilterPreset, error) {
	spec, err := json.Marshal(arg.Spec)
	if err != nil {
		return nil, fmt.Errorf("encode preset spec: %w", err)
	}
	row := q.db.QueryRow(ctx, updatePreset,
		pgUUID(arg.ID), arg.Name, markdown.Markdown{Source: arg.Description}, spec)
	return scanPreset(row)
}

const deletePreset = `DELETE FROM filter_presets WHERE id = $1`

func (q *Queries) DeletePreset(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, deletePreset, pgUUID(id))
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPresetNotFound
	}
	return nil
}
