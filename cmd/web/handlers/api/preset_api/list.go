package preset_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/cmd/web/handlers/common"
	"thirdcoast.systems/filtergraph/internal/db"
)

// HandleList lists stored presets ordered by name.
func HandleList(store db.PresetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := store.ListPresets(c.Request().Context())
		if err != nil {
			return common.StoreError(err)
		}
		out := make([]PresetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// HandleGet returns one preset by ID.
func HandleGet(store db.PresetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		p, err := store.GetPreset(c.Request().Context(), id)
		if err != nil {
			return common.StoreError(err)
		}
		return c.JSON(http.StatusOK, toResponse(p))
	}
}
