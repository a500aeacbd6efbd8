// package filter_api provides filter catalog and compile API handlers.
package filter_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/pkg/filters"
)

// FilterSummary is one catalog entry in the filter list.
type FilterSummary struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Media   filters.Media `json:"media"`
	Summary string        `json:"summary,omitempty"`
	Options int           `json:"options"`
}

// HandleList lists the registered filters, optionally narrowed by ?media=video|audio.
func HandleList(reg *filters.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		media := filters.Media(c.QueryParam("media"))
		if media != "" && media != filters.MediaVideo && media != filters.MediaAudio {
			return c.String(http.StatusBadRequest, "media must be video or audio")
		}

		defs := reg.Definitions()
		out := make([]FilterSummary, 0, len(defs))
		for _, def := range defs {
			if media != "" && def.Media != media {
				continue
			}
			out = append(out, FilterSummary{
				Name:    def.Name,
				Label:   def.Label(),
				Media:   def.Media,
				Summary: def.Doc,
				Options: len(def.Params),
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}
