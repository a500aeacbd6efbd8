package ffmpeg

import (
	"fmt"
	"strconv"
	"time"

	"thirdcoast.systems/filtergraph/pkg/filters"
)

// CropFilter represents a crop filter with normalized coordinates.
type CropFilter struct {
	CenterX, CenterY float64 // Normalized 0.0-1.0 (center of crop region)
	Width, Height    float64 // Normalized 0.0-1.0 (size of crop region)
}

// Exprs returns the crop size and top-left corner as expressions of the
// input dimensions.
func (c CropFilter) Exprs() (w, h, x, y string) {
	topLeftX := c.CenterX - c.Width/2
	topLeftY := c.CenterY - c.Height/2
	return fmt.Sprintf("iw*%.6f", c.Width), fmt.Sprintf("ih*%.6f", c.Height),
		fmt.Sprintf("iw*%.6f", topLeftX), fmt.Sprintf("ih*%.6f", topLeftY)
}

// Descriptor returns the validated crop filter.
func (c CropFilter) Descriptor() (filters.Descriptor, error) {
	w, h, x, y := c.Exprs()
	return filters.NewDescriptor(nil, "crop", map[string]any{
		"w": filters.Expr(w), "h": filters.Expr(h),
		"x": filters.Expr(x), "y": filters.Expr(y),
	})
}

// String returns the ffmpeg filter string.
func (c CropFilter) String() string {
	d, err := c.Descriptor()
	if err != nil {
		return ""
	}
	return d.String()
}

// build runs fn against cmd and records a failed Build on the command.
func build(fn func(cmd *Command) (*Command, error)) Option {
	return OptionFunc(func(cmd *Command) {
		_, err := fn(cmd)
		cmd.addErr(err)
	})
}

// Crop adds a crop filter with normalized coordinates.
// centerX, centerY: center of crop region (0.0-1.0)
// width, height: size of crop region (0.0-1.0)
func Crop(centerX, centerY, width, height float64) Option {
	w, h, x, y := CropFilter{centerX, centerY, width, height}.Exprs()
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Crop().W(w).H(h).X(x).Y(y).Build()
	})
}

// CropPixels adds a crop filter with pixel coordinates.
func CropPixels(w, h, x, y int) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Crop().Rect(w, h, x, y).Build()
	})
}

// ScaleFilter represents a scale filter.
type ScaleFilter struct {
	Width  int // Use -1 or -2 for auto-calculate maintaining aspect ratio
	Height int // Use -2 to ensure even dimensions (required for h264)
}

// String returns the ffmpeg filter string.
func (s ScaleFilter) String() string {
	d, err := filters.NewDescriptor(nil, "scale", map[string]any{"w": s.Width, "h": s.Height})
	if err != nil {
		return ""
	}
	return d.String()
}

// Scale adds a scale filter.
// Use -2 for width or height to auto-calculate while maintaining aspect ratio
// and ensuring even dimensions (required for h264).
func Scale(width, height int) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Scale().Width(width).Height(height).Build()
	})
}

// ScaleWidth scales to a specific width, auto-calculating height with even dimensions.
func ScaleWidth(width int) Option {
	return Scale(width, -2)
}

// ScaleHeight scales to a specific height, auto-calculating width with even dimensions.
func ScaleHeight(height int) Option {
	return Scale(-2, height)
}

// FPS adds an fps filter to change frame rate.
func FPS(rate float64) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.FPS().Rate(rate).Build()
	})
}

// Tile creates a tile filter for sprite sheets.
func Tile(cols, rows int) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Filter("tile").Set("layout", strconv.Itoa(cols)+"x"+strconv.Itoa(rows)).Build()
	})
}

// ScaleForceAspect scales with force_original_aspect_ratio option.
// mode can be "increase", "decrease", or "disable".
func ScaleForceAspect(width, height int, mode string) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Scale().Width(width).Height(height).ForceOriginalAspectRatio(mode).Build()
	})
}

// Pad adds padding to reach target dimensions.
// Use -1 for width/height to keep original.
// x, y are the position of the input video in the padded output.
func Pad(width, height int, x, y string) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Pad().W(strconv.Itoa(width)).H(strconv.Itoa(height)).X(x).Y(y).Build()
	})
}

// PadCenter adds padding to center the video in the target dimensions.
func PadCenter(width, height int) Option {
	return Pad(width, height, "(ow-iw)/2", "(oh-ih)/2")
}

// EvenDimensions ensures output dimensions are divisible by 2 (required for h264).
// This should be applied after any crop filter that may produce odd dimensions.
func EvenDimensions() Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Scale().W("trunc(iw/2)*2").H("trunc(ih/2)*2").Build()
	})
}

// FadeIn fades video in from black over d starting at start.
func FadeIn(start, d time.Duration) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Fade().Type("in").StartAt(start).Duration(d).Build()
	})
}

// FadeOut fades video out to black over d starting at start.
func FadeOut(start, d time.Duration) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Fade().Type("out").StartAt(start).Duration(d).Build()
	})
}

// Volume scales audio by a linear factor.
func Volume(factor float64) Option {
	return build(func(cmd *Command) (*Command, error) {
		return cmd.Volume().Factor(factor).Build()
	})
}
