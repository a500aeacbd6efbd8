// package preset_api provides stored preset API handlers.
package preset_api

import (
	"html/template"
	"time"

	"thirdcoast.systems/filtergraph/internal/db"
	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
)

// PresetRequest is the body of preset create and update requests.
type PresetRequest struct {
	Name        string            `json:"name" validate:"required,max=64"`
	Description string            `json:"description" validate:"max=4096"`
	Spec        ffmpeg.ExportSpec `json:"spec"`
}

// PresetResponse is the JSON form of a stored preset.
type PresetResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	DescriptionHTML template.HTML     `json:"description_html,omitempty"`
	Spec            ffmpeg.ExportSpec `json:"spec"`
	CreatedAt       *time.Time        `json:"created_at,omitempty"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(p *db.FilterPreset) PresetResponse {
	return PresetResponse{
		ID:              db.UUIDString(p.ID),
		Name:            p.Name,
		Description:     p.Description.Source,
		DescriptionHTML: p.Description.Render(),
		Spec:            p.Spec,
		CreatedAt:       db.NilTimePtr(p.CreatedAt),
		UpdatedAt:       db.NilTimePtr(p.UpdatedAt),
	}
}
