package preset_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/cmd/web/handlers/common"
	"thirdcoast.systems/filtergraph/internal/db"
)

// HandleDelete deletes a preset.
func HandleDelete(store db.PresetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		if err := store.DeletePreset(c.Request().Context(), id); err != nil {
			return common.StoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
