package preset_api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/cmd/web/handlers/common"
	"thirdcoast.systems/filtergraph/internal/db"
	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/filters"
)

// bindPreset decodes and validates a preset body. The recipe must compile
// against reg; crop references are not checked since crops come per request.
func bindPreset(c echo.Context, reg *filters.Registry) (*PresetRequest, error) {
	var req PresetRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		return nil, err
	}
	specs := make([]ffmpeg.FilterSpec, 0, len(req.Spec.Filters))
	for _, f := range req.Spec.Filters {
		if f.Type == "crop" {
			continue
		}
		specs = append(specs, f)
	}
	if _, err := ffmpeg.CompileFiltersWith(reg, specs, nil); err != nil {
		return nil, common.CompileError(err)
	}
	return &req, nil
}

// HandleCreate stores a new preset.
func HandleCreate(store db.PresetStore, reg *filters.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := bindPreset(c, reg)
		if err != nil {
			return err
		}
		p, err := store.CreatePreset(c.Request().Context(), db.CreatePresetParams{
			Name:        req.Name,
			Description: req.Description,
			Spec:        req.Spec,
		})
		if err != nil {
			slog.Warn("preset create failed", "name", req.Name, "error", err)
			return common.StoreError(err)
		}
		return c.JSON(http.StatusCreated, toResponse(p))
	}
}

// HandleUpdate replaces an existing preset.
func HandleUpdate(store db.PresetStore, reg *filters.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		req, err := bindPreset(c, reg)
		if err != nil {
			return err
		}
		p, err := store.UpdatePreset(c.Request().Context(), db.UpdatePresetParams{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			Spec:        req.Spec,
		})
		if err != nil {
			return common.StoreError(err)
		}
		return c.JSON(http.StatusOK, toResponse(p))
	}
}
