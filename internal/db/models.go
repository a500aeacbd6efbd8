package db

import (
	"github.com/jackc/pgx/v5/pgtype"
	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/utils/markdown"
)

// FilterPreset is a named, stored export recipe.
type FilterPreset struct {
	ID          pgtype.UUID
	Name        string
	Description markdown.Markdown
	Spec        ffmpeg.ExportSpec
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}
