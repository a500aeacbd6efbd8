package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/utils/format"
)

func newProbeCmd(a *app) *cobra.Command {
	var asJSON, short bool

	cmd := &cobra.Command{
		Use:   "probe FILE",
		Short: "Show media information with ffprobe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := ffmpeg.ProbeWith(cmd.Context(), a.conf.FFmpeg.ProbeBinary, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(out, res.RawJSON)
			case short:
				_, err = fmt.Fprintln(out, res.Summary())
				return err
			default:
				return printProbe(out, args[0], res)
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw ffprobe JSON")
	cmd.Flags().BoolVar(&short, "short", false, "print a one-line summary")
	return cmd
}

func printProbe(w io.Writer, path string, r *ffmpeg.ProbeResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "File\t%s\n", path)
	fmt.Fprintf(tw, "Format\t%s\n", r.FormatName)
	fmt.Fprintf(tw, "Duration\t%s\n", format.Duration(r.Duration))
	fmt.Fprintf(tw, "Size\t%s\n", humanize.IBytes(uint64(max(r.Size, 0))))
	if r.Bitrate > 0 {
		fmt.Fprintf(tw, "Bitrate\t%s/s\n", humanize.SI(float64(r.Bitrate), "b"))
	}
	if r.VideoStreams > 0 {
		fmt.Fprintf(tw, "Video\t%s %dx%d %s, %s fps\n", r.VideoCodec, r.Width, r.Height, r.PixelFormat, humanize.FtoaWithDigits(r.FPS, 2))
	}
	if r.AudioStreams > 0 {
		fmt.Fprintf(tw, "Audio\t%s, %d ch, %s Hz\n", r.AudioCodec, r.AudioChannels, humanize.Comma(int64(r.AudioSampleRate)))
	}
	return tw.Flush()
}
