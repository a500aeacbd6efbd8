package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"thirdcoast.systems/filtergraph/pkg/filters"
	"thirdcoast.systems/filtergraph/pkg/utils/format"
)

func newCatalogCmd(a *app) *cobra.Command {
	var asJSON bool
	var media string

	cmd := &cobra.Command{
		Use:   "catalog [name]",
		Short: "List registered filters or show one filter's options",
		Long: `List the filters in the catalog, or show the option schema of one filter.

Examples:
  filterctl catalog
  filterctl catalog --media audio
  filterctl catalog drawtext --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				def, ok := a.registry.Lookup(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", filters.ErrUnknownFilter, args[0])
				}
				if asJSON {
					return writeJSON(out, def)
				}
				return printDefinition(out, def)
			}

			defs := a.registry.Definitions()
			if media != "" {
				kept := defs[:0]
				for _, d := range defs {
					if string(d.Media) == media {
						kept = append(kept, d)
					}
				}
				defs = kept
			}
			if asJSON {
				return writeJSON(out, defs)
			}
			return printCatalog(out, defs)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().StringVar(&media, "media", "", "only list video or audio filters")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCatalog(w io.Writer, defs []*filters.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMEDIA\tOPTIONS\tDESCRIPTION")
	for _, d := range defs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", d.Name, d.Media, len(d.Params), format.Truncate(d.Doc, 60))
	}
	return tw.Flush()
}

func printDefinition(w io.Writer, def *filters.Definition) error {
	fmt.Fprintf(w, "%s (%s)\n", def.Label(), def.Media)
	if def.Doc != "" {
		fmt.Fprintf(w, "%s\n", def.Doc)
	}
	if len(def.Params) == 0 {
		fmt.Fprintln(w, "\nNo options.")
		return nil
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTION\tALIASES\tTYPE\tDEFAULT\tRANGE")
	for _, p := range def.Params {
		rng := ""
		switch {
		case p.Bounded:
			rng = fmt.Sprintf("%g..%g", p.Min, p.Max)
		case len(p.Choices) > 0:
			rng = strings.Join(p.ChoiceValues(), "|")
		}
		req := ""
		if p.Required {
			req = " (required)"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\n", p.Key, req, strings.Join(p.Aliases, ","), p.Type, p.DefaultVal, rng)
	}
	return tw.Flush()
}
