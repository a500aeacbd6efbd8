package ffmpeg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"thirdcoast.systems/filtergraph/pkg/filters"
	"thirdcoast.systems/filtergraph/pkg/utils/crops"
)

// ExportSpec describes the full encoding recipe for an export.
type ExportSpec struct {
	// Format is the output container format: "mp4", "webm", "gif"
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=mp4 webm gif"`
	// Quality selects the encoding quality tier: "high" or "max"
	Quality string `json:"quality,omitempty" yaml:"quality,omitempty" validate:"omitempty,oneof=high max"`
	// Filters is an ordered list of filters to apply (video + audio).
	Filters []FilterSpec `json:"filters,omitempty" yaml:"filters,omitempty" validate:"dive"`
}

// FilterSpec describes a single filter in the export pipeline.
type FilterSpec struct {
	// Type is a recipe ("brightness", "grayscale", "speed", ...) or the name
	// of any registered filter.
	Type string `json:"type" yaml:"type" validate:"required"`
	// Params holds type-specific parameters as a loosely-typed map.
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

// Options returns the codec options for the spec's format and quality.
func (s ExportSpec) Options() []Option {
	video, audio, _ := ExportPresetForFormat(s.Format, s.Quality)
	return Flatten(video, audio)
}

// Extension returns the output file extension for the spec's format.
func (s ExportSpec) Extension() string {
	_, _, ext := ExportPresetForFormat(s.Format, s.Quality)
	return ext
}

// Compile builds the full ffmpeg command for spec. An empty output becomes
// "output" plus the format's extension. opts are applied after the spec's
// codec and filter options.
func (s ExportSpec) Compile(reg *filters.Registry, input, output string, clipCrops crops.CropArray, opts ...Option) (*Command, error) {
	filterOpts, err := CompileFiltersWith(reg, s.Filters, clipCrops)
	if err != nil {
		return nil, err
	}
	if output == "" {
		output = "output" + s.Extension()
	}
	all := Flatten([]Option{WithRegistry(reg)}, s.Options(), filterOpts, opts)
	cmd := NewCommand(input, output, all...)
	if err := cmd.Err(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// compiled collects the descriptors produced by recipes.
type compiled struct {
	reg   *filters.Registry
	descs []filters.Descriptor
	opts  []Option
}

// AddFilter implements filters.Sink.
func (c *compiled) AddFilter(d filters.Descriptor) {
	c.descs = append(c.descs, d)
}

// done turns the result of a typed builder's Build into an error.
func done(_ *compiled, err error) error { return err }

// CompileFilters converts a slice of FilterSpec into ffmpeg Options using the
// default filter catalog. clipCrops is needed to resolve crop IDs to coordinates.
func CompileFilters(specs []FilterSpec, clipCrops crops.CropArray) ([]Option, error) {
	return CompileFiltersWith(nil, specs, clipCrops)
}

// CompileFiltersWith is CompileFilters against reg.
func CompileFiltersWith(reg *filters.Registry, specs []FilterSpec, clipCrops crops.CropArray) ([]Option, error) {
	if reg == nil {
		reg = filters.Default()
	}
	c := &compiled{reg: reg}
	hasCrop := false

	var errs []error
	for i, spec := range specs {
		if err := c.compile(spec, clipCrops); err != nil {
			errs = append(errs, fmt.Errorf("filter[%d] (%s): %w", i, spec.Type, err))
			continue
		}
		if spec.Type == "crop" || spec.Type == "crop_manual" {
			hasCrop = true
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// If any crop was applied, ensure even dimensions for h264 compatibility
	if hasCrop {
		if err := done(filters.NewScale(c.reg, c).W("trunc(iw/2)*2").H("trunc(ih/2)*2").Build()); err != nil {
			return nil, err
		}
	}

	opts := make([]Option, 0, len(c.descs)+len(c.opts))
	for _, d := range c.descs {
		opts = append(opts, WithFilter(d))
	}
	return append(opts, c.opts...), nil
}

// compile converts a single FilterSpec into descriptors.
func (c *compiled) compile(spec FilterSpec, clipCrops crops.CropArray) error {
	p := spec.Params
	switch spec.Type {

	// === Video - Spatial ===

	case "crop":
		cropID, _ := p["crop_id"].(string)
		if cropID == "" {
			return fmt.Errorf("crop_id is required")
		}
		crop, ok := clipCrops.Find(cropID)
		if !ok {
			return nil
		}
		w, h, x, y, ok := crop.Exprs()
		if !ok {
			return nil // Full frame - skip
		}
		return done(filters.NewCrop(c.reg, c).W(w).H(h).X(x).Y(y).Build())

	case "crop_manual":
		w, h, x, y, ok := crops.Exprs(
			paramFloat(p, "x", 0.5), paramFloat(p, "y", 0.5),
			paramFloat(p, "width", 1.0), paramFloat(p, "height", 1.0))
		if !ok {
			return nil
		}
		return done(filters.NewCrop(c.reg, c).W(w).H(h).X(x).Y(y).Build())

	case "scale":
		width := paramInt(p, "width", -2)
		height := paramInt(p, "height", -2)
		if width == -2 && height == -2 {
			return fmt.Errorf("at least one of width or height is required")
		}
		return done(filters.NewScale(c.reg, c).Width(width).Height(height).Build())

	case "transpose":
		dir := "clock" // Default: CW
		switch d, _ := p["direction"].(string); d {
		case "ccw":
			dir = "cclock"
		case "cw_flip":
			dir = "clock_flip"
		case "ccw_flip":
			dir = "cclock_flip"
		}
		return done(filters.NewTranspose(c.reg, c).Dir(dir).Build())

	case "rotate":
		angle := paramFloat(p, "angle", 0)
		if angle == 0 {
			return nil
		}
		return c.named("rotate", map[string]any{"angle": filters.Expr(filters.FmtNum(angle) + "*PI/180")})

	case "pad":
		w := paramInt(p, "width", 0)
		h := paramInt(p, "height", 0)
		if w <= 0 || h <= 0 {
			return fmt.Errorf("width and height are required for pad")
		}
		return done(filters.NewPad(c.reg, c).
			W(strconv.Itoa(w)).H(strconv.Itoa(h)).X("(ow-iw)/2").Y("(oh-ih)/2").
			Color(paramColor(p, "color", "black")).Build())

	// === Video - Temporal ===

	case "speed":
		factor := paramFloat(p, "factor", 1.0)
		if factor == 1.0 {
			return nil
		}
		if factor < 0.25 || factor > 4.0 {
			return fmt.Errorf("speed factor must be between 0.25 and 4.0")
		}
		if err := done(filters.NewSetPTS(c.reg, c).Expr(fmt.Sprintf("PTS/%.4f", factor)).Build()); err != nil {
			return err
		}
		// atempo is limited to 0.5-2.0 per instance on older ffmpeg; chain for larger ranges
		for _, tempo := range atempoChain(factor) {
			if err := done(filters.NewATempo(c.reg, c).Tempo(tempo).Build()); err != nil {
				return err
			}
		}
		return nil

	case "fade_in", "fade_out":
		f := filters.NewFade(c.reg, c).
			Type(spec.Type[len("fade_"):]).
			Duration(seconds(paramFloat(p, "duration", 0.5)))
		if spec.Type == "fade_in" || hasParam(p, "start") {
			// fade_out needs the clip duration to place it; callers supply "start"
			f.StartAt(seconds(paramFloat(p, "start", paramFloat(p, "offset", 0))))
		}
		if color := paramColor(p, "color", "black"); color != "black" && color != "#000000" {
			f.Color(color)
		}
		return done(f.Build())

	case "reverse":
		if err := c.named("reverse", nil); err != nil {
			return err
		}
		return c.named("areverse", nil)

	// === Video - Color & Effects ===

	case "brightness":
		v := paramFloat(p, "value", 0)
		if v == 0 {
			return nil
		}
		return done(filters.NewEq(c.reg, c).Brightness(v).Build())

	case "contrast":
		v := paramFloat(p, "value", 1.0)
		if v == 1.0 {
			return nil
		}
		return done(filters.NewEq(c.reg, c).Contrast(v).Build())

	case "saturation":
		v := paramFloat(p, "value", 1.0)
		if v == 1.0 {
			return nil
		}
		return done(filters.NewEq(c.reg, c).Saturation(v).Build())

	case "gamma":
		v := paramFloat(p, "value", 1.0)
		if v == 1.0 {
			return nil
		}
		return done(filters.NewEq(c.reg, c).Gamma(v).Build())

	case "curves":
		preset, _ := p["preset"].(string)
		if preset == "" {
			return fmt.Errorf("preset is required for curves filter")
		}
		return c.named("curves", map[string]any{"preset": preset})

	case "grayscale":
		return c.named("hue", map[string]any{"s": 0})

	case "sepia":
		return c.named("colorchannelmixer", map[string]any{
			"rr": .393, "rg": .769, "rb": .189, "ra": 0,
			"gr": .349, "gg": .686, "gb": .168,
			"br": .272, "bg": .534, "bb": .131,
		})

	case "sharpen":
		return c.named("unsharp", map[string]any{
			"luma_msize_x": 5, "luma_msize_y": 5, "luma_amount": paramFloat(p, "amount", 1.5),
			"chroma_msize_x": 5, "chroma_msize_y": 5, "chroma_amount": 0,
		})

	case "denoise":
		strength, _ := p["strength"].(string)
		vals := []float64{2, 1.5, 3, 2.25} // "light" or default
		switch strength {
		case "heavy":
			vals = []float64{8, 6, 12, 9}
		case "medium":
			vals = []float64{4, 3, 6, 4.5}
		}
		return c.named("hqdn3d", map[string]any{
			"luma_spatial": vals[0], "chroma_spatial": vals[1],
			"luma_tmp": vals[2], "chroma_tmp": vals[3],
		})

	case "vignette":
		angle := paramFloat(p, "angle", 0.628) // PI/5 default
		return c.named("vignette", map[string]any{"angle": angle})

	case "color_balance":
		opts := map[string]any{}
		for _, key := range []string{"rs", "gs", "bs", "rm", "gm", "bm", "rh", "gh", "bh"} {
			if v, ok := p[key]; ok {
				opts[key] = v
			}
		}
		if len(opts) == 0 {
			return nil
		}
		return c.named("colorbalance", opts)

	case "color_temp":
		temp := paramFloat(p, "temperature", 6500)
		tint := paramFloat(p, "tint", 0)
		if temp != 6500 {
			if err := c.named("colortemperature", map[string]any{"temperature": temp}); err != nil {
				return err
			}
		}
		if tint != 0 {
			// Tint shifts green-magenta via colorbalance
			return c.named("colorbalance", map[string]any{"gm": tint * 0.2, "bm": -tint * 0.2})
		}
		return nil

	case "lift_gamma_gain":
		lift := paramFloat(p, "lift", 0)
		gamma := paramFloat(p, "gamma", 1)
		gain := paramFloat(p, "gain", 1)
		if lift == 0 && gamma == 1 && gain == 1 {
			return nil
		}
		// brightness for lift, gamma for gamma, contrast for gain
		return done(filters.NewEq(c.reg, c).Brightness(lift).Gamma(gamma).Contrast(gain).Build())

	case "exposure":
		ev := paramFloat(p, "exposure", 0)
		black := paramFloat(p, "black", 0)
		if ev != 0 {
			if err := done(filters.NewEq(c.reg, c).Brightness(ev * 0.15).Build()); err != nil {
				return err
			}
		}
		if black > 0 {
			return c.named("curves", map[string]any{"master": fmt.Sprintf("0/%.3f 1/1", black)})
		}
		return nil

	case "lut":
		preset, _ := p["preset"].(string)
		if preset == "" || preset == "none" {
			return nil
		}
		return c.lutPreset(preset)

	// === Video - Overlay & Text ===

	case "text":
		text, _ := p["text"].(string)
		if text == "" {
			return nil
		}
		x, y := textPosition(paramString(p, "position"))
		return done(filters.NewDrawText(c.reg, c).
			Text(text).
			FontSize(paramInt(p, "font_size", 24)).
			FontColor(paramColor(p, "color", "white")).
			X(x).Y(y).Build())

	// === Audio ===

	case "volume":
		gain := paramFloat(p, "gain", 1.0)
		if gain == 1.0 {
			return nil
		}
		return done(filters.NewVolume(c.reg, c).Factor(gain).Build())

	case "audio_fade_in", "audio_fade_out":
		f := filters.NewAFade(c.reg, c).
			Type(spec.Type[len("audio_fade_"):]).
			Duration(seconds(paramFloat(p, "duration", 0.5)))
		if spec.Type == "audio_fade_in" || hasParam(p, "start") {
			f.StartAt(seconds(paramFloat(p, "start", paramFloat(p, "offset", 0))))
		}
		if curve := paramString(p, "curve"); curve != "" && curve != "tri" {
			f.Curve(curve)
		}
		return done(f.Build())

	case "normalize":
		switch paramString(p, "mode") {
		case "rms":
			return c.named("dynaudnorm", nil)
		case "peak":
			return c.named("dynaudnorm", map[string]any{"peak": 1})
		default:
			return done(filters.NewLoudnorm(c.reg, c).Build())
		}

	case "equalizer":
		gain := paramFloat(p, "gain", 0)
		if gain == 0 {
			return nil
		}
		return c.band(paramFloat(p, "frequency", 1000), paramFloat(p, "width", 200), gain)

	case "bass":
		gain := paramFloat(p, "gain", 0)
		if gain == 0 {
			return nil
		}
		return c.band(100, 200, gain)

	case "treble":
		gain := paramFloat(p, "gain", 0)
		if gain == 0 {
			return nil
		}
		return c.band(8000, 4000, gain)

	case "highpass":
		return c.named("highpass", map[string]any{"frequency": paramInt(p, "frequency", 80)})

	case "lowpass":
		return c.named("lowpass", map[string]any{"frequency": paramInt(p, "frequency", 15000)})

	case "compressor":
		// acompressor expects a linear threshold, not dB
		threshold := dbToLinear(paramFloat(p, "threshold", -20), 0.000976563, 1)
		return done(filters.NewACompressor(c.reg, c).
			Threshold(threshold).
			Ratio(paramFloat(p, "ratio", 4)).
			Attack(paramFloat(p, "attack", 20)).
			Release(paramFloat(p, "release", 250)).Build())

	case "noise_gate":
		threshold := dbToLinear(paramFloat(p, "threshold", -40), 0, 1)
		return c.named("agate", map[string]any{"threshold": threshold})

	case "mute":
		c.opts = append(c.opts, NoAudio)
		return nil

	default:
		if _, ok := c.reg.Lookup(spec.Type); ok {
			return c.named(spec.Type, p)
		}
		return fmt.Errorf("unknown filter type: %s", spec.Type)
	}
}

// named builds a registered filter from a loose options map.
func (c *compiled) named(name string, opts map[string]any) error {
	return done(filters.New(c.reg, c, name).SetAll(opts).Build())
}

func (c *compiled) band(freq, width, gain float64) error {
	return done(filters.NewEqualizer(c.reg, c).Frequency(freq).WidthType("h").Width(width).Gain(gain).Build())
}

// atempoChain splits a speed factor into atempo values within 0.5-2.0.
func atempoChain(factor float64) []float64 {
	if factor <= 0 {
		return nil
	}
	var tempos []float64
	remaining := factor
	for remaining > 2.0 {
		tempos = append(tempos, 2.0)
		remaining /= 2.0
	}
	for remaining < 0.5 {
		tempos = append(tempos, 0.5)
		remaining /= 0.5
	}
	if remaining != 1.0 {
		tempos = append(tempos, math.Round(remaining*1e4)/1e4)
	}
	return tempos
}

// lutPreset emulates common film look LUTs with curves, colorbalance and eq
// without requiring external .cube files.
func (c *compiled) lutPreset(preset string) error {
	type step struct {
		name string
		opts map[string]any
	}
	var steps []step
	switch preset {
	case "cinematic_warm":
		steps = []step{
			{"curves", map[string]any{"preset": "cross_process"}},
			{"colorbalance", map[string]any{"rs": 0.08, "gs": 0.02, "bs": -0.06, "rm": 0.05, "gm": 0.02, "bm": -0.05, "rh": 0.03, "gh": 0, "bh": -0.03}},
			{"eq", map[string]any{"contrast": 1.1, "saturation": 0.9}},
		}
	case "cinematic_cool":
		steps = []step{
			{"colorbalance", map[string]any{"rs": -0.05, "gs": 0, "bs": 0.1, "rm": -0.05, "gm": 0.02, "bm": 0.08, "rh": -0.03, "gh": 0, "bh": 0.05}},
			{"eq", map[string]any{"contrast": 1.15, "saturation": 0.85}},
		}
	case "film_noir":
		steps = []step{
			{"hue", map[string]any{"s": 0}},
			{"eq", map[string]any{"contrast": 1.4, "brightness": 0.05, "gamma": 0.9}},
			{"curves", map[string]any{"master": "0/0 0.25/0.15 0.5/0.5 0.75/0.85 1/1"}},
		}
	case "bleach_bypass":
		steps = []step{
			{"eq", map[string]any{"saturation": 0.4, "contrast": 1.3, "brightness": 0.05}},
			{"curves", map[string]any{"master": "0/0 0.25/0.2 0.75/0.85 1/1"}},
		}
	case "orange_teal":
		steps = []step{
			{"colorbalance", map[string]any{"rs": 0.15, "gs": -0.05, "bs": -0.15, "rm": 0.05, "gm": 0, "bm": -0.05, "rh": -0.1, "gh": 0.05, "bh": 0.1}},
			{"eq", map[string]any{"saturation": 1.2, "contrast": 1.1}},
		}
	case "vintage_fade":
		steps = []step{
			{"curves", map[string]any{"master": "0/0.05 0.25/0.18 0.75/0.82 1/0.95"}},
			{"colorbalance", map[string]any{"rs": 0.1, "gs": 0.05, "bs": -0.05, "rm": 0.05, "gm": 0, "bm": -0.03}},
			{"eq", map[string]any{"saturation": 0.7}},
		}
	case "high_contrast":
		steps = []step{
			{"hue", map[string]any{"s": 0}},
			{"eq", map[string]any{"contrast": 1.6, "brightness": -0.02}},
		}
	case "pastel":
		steps = []step{
			{"eq", map[string]any{"saturation": 0.6, "brightness": 0.08, "gamma": 1.1}},
			{"curves", map[string]any{"master": "0/0.05 0.5/0.55 1/0.95"}},
		}
	case "golden_hour":
		steps = []step{
			{"colorbalance", map[string]any{"rs": 0.15, "gs": 0.08, "bs": -0.1, "rm": 0.1, "gm": 0.05, "bm": -0.08}},
			{"eq", map[string]any{"saturation": 1.15, "brightness": 0.03, "gamma": 1.05}},
		}
	case "moonlit":
		steps = []step{
			{"colorbalance", map[string]any{"rs": -0.08, "gs": -0.02, "bs": 0.15, "rm": -0.05, "gm": 0, "bm": 0.1, "rh": 0, "gh": 0, "bh": 0.05}},
			{"eq", map[string]any{"saturation": 0.6, "brightness": -0.05, "gamma": 0.9}},
		}
	default:
		return fmt.Errorf("unknown LUT preset: %s", preset)
	}
	for _, s := range steps {
		if err := c.named(s.name, s.opts); err != nil {
			return err
		}
	}
	return nil
}

// textPosition maps a named position to ffmpeg drawtext x/y expressions.
func textPosition(position string) (string, string) {
	switch position {
	case "top-left":
		return "10", "10"
	case "top-center":
		return "(w-text_w)/2", "10"
	case "top-right":
		return "w-text_w-10", "10"
	case "center":
		return "(w-text_w)/2", "(h-text_h)/2"
	case "bottom-left":
		return "10", "h-text_h-10"
	case "bottom-right":
		return "w-text_w-10", "h-text_h-10"
	default:
		return "(w-text_w)/2", "h-text_h-10" // bottom-center
	}
}

func dbToLinear(db, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, math.Pow(10, db/20.0)))
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func hasParam(params map[string]any, key string) bool {
	_, ok := params[key]
	return ok
}

func paramString(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// paramColor extracts a color string from a params map with a default value.
// Handles both CSS color names ("black") and hex colors ("#000000").
func paramColor(params map[string]any, key string, def string) string {
	if s := paramString(params, key); s != "" {
		return s
	}
	return def
}

// paramFloat extracts a float64 from a params map with a default value.
func paramFloat(params map[string]any, key string, def float64) float64 {
	v, ok := params[key]
	if !ok {
		return def
	}
	val, err := filters.ValueOf(v)
	if err != nil {
		return def
	}
	if n, ok := val.Number(); ok {
		return n
	}
	var f float64
	if _, err := fmt.Sscanf(val.Text(), "%f", &f); err == nil {
		return f
	}
	return def
}

// paramInt extracts an int from a params map with a default value.
func paramInt(params map[string]any, key string, def int) int {
	return int(paramFloat(params, key, float64(def)))
}
