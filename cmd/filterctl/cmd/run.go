package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/utils/format"
)

func newRunCmd(a *app) *cobra.Command {
	var file, input, output string
	var progress bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compile a chain file and run ffmpeg",
		Long: `Compile a YAML chain file and run ffmpeg with it.

Examples:
  filterctl run -f chain.yaml -i in.mp4 -o out.mp4
  filterctl run -f chain.yaml -i in.mp4 -o out.mp4 --progress`,
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

			ctx := cmd.Context()
			out := cmd.ErrOrStderr()
			slog.Debug("running ffmpeg", "command", ff.String())
			start := time.Now()

			if !progress {
				err = ff.Run(ctx)
			} else {
				ch := make(chan ffmpeg.Progress, 16)
				done := make(chan struct{})
				go func() {
					defer close(done)
					for p := range ch {
						fmt.Fprintf(out, "\r%s", p)
					}
					fmt.Fprintln(out)
				}()
				// The process closes ch on exit. It stays open if the start fails.
				proc, startErr := ff.StartWithProgress(ctx, ch)
				if startErr != nil {
					close(ch)
					<-done
					return startErr
				}
				err = proc.Wait()
				<-done
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "done in %s\n", format.Elapsed(time.Since(start)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "chain file (- for stdin)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, overrides the chain file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, overrides the chain file")
	cmd.Flags().BoolVar(&progress, "progress", false, "report encoding progress")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
