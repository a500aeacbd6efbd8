package filter_api

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/filtergraph/cmd/web/handlers/common"
	"thirdcoast.systems/filtergraph/pkg/filters"
	"thirdcoast.systems/filtergraph/pkg/utils/markdown"
)

// OptionDoc is a filter option with its rendered documentation.
type OptionDoc struct {
	filters.Param
	Label   string        `json:"label"`
	DocHTML template.HTML `json:"doc_html,omitempty"`
}

// FilterDoc is the full schema of a filter.
type FilterDoc struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Media   filters.Media `json:"media"`
	Doc     string        `json:"doc,omitempty"`
	DocHTML template.HTML `json:"doc_html,omitempty"`
	Options []OptionDoc   `json:"options"`
}

// NewFilterDoc renders the documentation of def.
func NewFilterDoc(def *filters.Definition) FilterDoc {
	doc := FilterDoc{
		Name:    def.Name,
		Label:   def.Label(),
		Media:   def.Media,
		Doc:     def.Doc,
		DocHTML: markdown.ToHTML(def.Doc),
		Options: make([]OptionDoc, 0, len(def.Params)),
	}
	for _, p := range def.Params {
		doc.Options = append(doc.Options, OptionDoc{
			Param:   p,
			Label:   filters.Label(p.Key),
			DocHTML: markdown.ToHTML(p.Doc),
		})
	}
	return doc
}

// HandleGet returns the schema of one filter, resolved by name.
func HandleGet(reg *filters.Registry) echo.HandlerFunc {
	return func(c echo.Context) error {
		def, ok := reg.Lookup(c.Param("name"))
		if !ok {
			return common.ErrNotFound("unknown filter " + c.Param("name"))
		}
		return c.JSON(http.StatusOK, NewFilterDoc(def))
	}
}
