package preset_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/cmd/web/handlers/api/filter_api"
	"thirdcoast.systems/filtergraph/cmd/web/handlers/common"
	"thirdcoast.systems/filtergraph/internal/db"
	"thirdcoast.systems/filtergraph/pkg/filters"
	"thirdcoast.systems/filtergraph/pkg/utils/crops"
)

// CompileRequest is the body of POST /api/presets/:id/compile.
type CompileRequest struct {
	Input  string          `json:"input"`
	Output string          `json:"output"`
	Crops  crops.CropArray `json:"crops,omitempty"`
}

// HandleCompile compiles a stored preset against the given input and output.
func HandleCompile(store db.PresetStore, reg *filters.Registry, binary string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		var req CompileRequest
		if err := common.BindAndValidate(c, &req); err != nil {
			return err
		}
		p, err := store.GetPreset(c.Request().Context(), id)
		if err != nil {
			return common.StoreError(err)
		}
		resp, err := filter_api.Compile(reg, binary, req.Input, req.Output, p.Spec, req.Crops)
		if err != nil {
			return common.CompileError(err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
