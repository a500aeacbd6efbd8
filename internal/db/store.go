package db

import (
	"context"

	"github.com/google/uuid"
)

// PresetStore is the preset persistence surface used by the HTTP API.
type PresetStore interface {
	CreatePreset(ctx context.Context, arg CreatePresetParams) (*FilterPreset, error)
	GetPreset(ctx context.Context, id uuid.UUID) (*FilterPreset, error)
	GetPresetByName(ctx context.Context, name string) (*FilterPreset, error)
	ListPresets(ctx context.Context) ([]*FilterPreset, error)
	UpdatePreset(ctx context.Context, arg UpdatePresetParams) (*FilterPreset, error)
	DeletePreset(ctx context.Context, id uuid.UUID) error
}

var _ PresetStore = (*Queries)(nil)
