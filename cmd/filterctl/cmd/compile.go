package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"thirdcoast.systems/filtergraph/pkg/filters"
)

type compileOutput struct {
	Args         []string             `json:"args"`
	VideoFilters []filters.Descriptor `json:"video_filters"`
	AudioFilters []filters.Descriptor `json:"audio_filters"`
}

func newCompileCmd(a *app) *cobra.Command {
	var file, input, output string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a chain file into an ffmpeg command line",
		Long: `Compile a YAML chain file into the ffmpeg invocation that would run it.
Nothing is executed.

Examples:
  filterctl compile -f chain.yaml -i in.mp4 -o out.mp4
  cat chain.yaml | filterctl compile -f - --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cf, err := LoadChainFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			ff, err := a.command(cmd.Context(), cf, input, output)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, compileOutput{
					Args:         ff.Build(),
					VideoFilters: ff.VideoChain(),
					AudioFilters: ff.AudioChain(),
				})
			}
			_, err = fmt.Fprintln(out, ff.String())
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "chain file (- for stdin)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, overrides the chain file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, overrides the chain file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print args and filters as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
