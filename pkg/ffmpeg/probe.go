package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultProbeBinary is the ffprobe executable used by Probe.
const DefaultProbeBinary = "ffprobe"

// ProbeResult is the metadata of a media file. Stream fields describe the
// first video and first audio stream.
type ProbeResult struct {
	Width       int
	Height      int
	FPS         float64
	VideoCodec  string
	PixelFormat string

	AudioCodec      string
	AudioChannels   int
	AudioSampleRate int

	Duration   float64 // seconds
	Bitrate    int64   // bits per second
	Size       int64   // bytes
	FormatName string

	VideoStreams int
	AudioStreams int

	// RawJSON is ffprobe's complete output.
	RawJSON map[string]any
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
	PixFmt     string `json:"pix_fmt"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

type probeOutput struct {
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
		Size       string `json:"size"`
		BitRate    string `json:"bit_rate"`
	} `json:"format"`
	Streams []probeStream `json:"streams"`
}

// Probe runs ffprobe on path.
func Probe(ctx context.Context, path string) (*ProbeResult, error) {
	return ProbeWith(ctx, DefaultProbeBinary, path)
}

// ProbeWith runs the given ffprobe binary on path.
func ProbeWith(ctx context.Context, binary, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, binary,
		"-hide_banner", "-v", "error",
		"-print_format", "json", "-show_format", "-show_streams",
		path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
	}
	return ParseProbe(stdout.Bytes())
}

// ParseProbe decodes ffprobe's "-print_format json -show_format
// -show_streams" output.
func ParseProbe(data []byte) (*ProbeResult, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("ffprobe: decode output: %w", err)
	}
	res := &ProbeResult{
		FormatName: out.Format.FormatName,
		Bitrate:    parseInt(out.Format.BitRate),
		Size:       parseInt(out.Format.Size),
	}
	res.Duration, _ = strconv.ParseFloat(out.Format.Duration, 64)
	if err := json.Unmarshal(data, &res.RawJSON); err != nil {
		return nil, fmt.Errorf("ffprobe: decode output: %w", err)
	}

	for _, s := range out.Streams {
		switch s.CodecType {
		case "video":
			if res.VideoStreams == 0 {
				res.Width, res.Height = s.Width, s.Height
				res.VideoCodec, res.PixelFormat = s.CodecName, s.PixFmt
				res.FPS = parseRate(s.RFrameRate)
			}
			res.VideoStreams++
		case "audio":
			if res.AudioStreams == 0 {
				res.AudioCodec, res.AudioChannels = s.CodecName, s.Channels
				res.AudioSampleRate = int(parseInt(s.SampleRate))
			}
			res.AudioStreams++
		}
	}
	return res, nil
}

// Summary returns a one-line human readable description of the file.
func (r *ProbeResult) Summary() string {
	var b strings.Builder
	dur := time.Duration(r.Duration * float64(time.Second)).Truncate(time.Millisecond)
	fmt.Fprintf(&b, "%s, %s, %s", r.FormatName, dur, humanize.Bytes(uint64(max(r.Size, 0))))
	if r.VideoStreams > 0 {
		fmt.Fprintf(&b, ", video %s %dx%d @ %s fps", r.VideoCodec, r.Width, r.Height, humanize.Ftoa(math.Round(r.FPS*100)/100))
	}
	if r.AudioStreams > 0 {
		fmt.Fprintf(&b, ", audio %s %d ch %s Hz", r.AudioCodec, r.AudioChannels, humanize.Comma(int64(r.AudioSampleRate)))
	}
	return b.String()
}

// parseRate parses an ffprobe rational such as "30000/1001".
func parseRate(rate string) float64 {
	num, den, ok := strings.Cut(rate, "/")
	if !ok {
		f, _ := strconv.ParseFloat(rate, 64)
		return f
	}
	n, errN := strconv.ParseFloat(num, 64)
	d, errD := strconv.ParseFloat(den, 64)
	if errN != nil || errD != nil || d == 0 {
		return 0
	}
	return n / d
}
