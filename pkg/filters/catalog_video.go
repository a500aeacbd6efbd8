package filters

var (
	colorMatrices = choices("auto", "bt601", "bt470", "smpte170m", "bt709", "fcc", "smpte240m", "bt2020")
	colorRanges   = choices("auto", "unknown", "full", "limited", "jpeg", "mpeg", "tv", "pc")
	evalModes     = choices("init", "frame")
	fadeTypes     = []Choice{{Value: "in", Label: "Fade In"}, {Value: "out", Label: "Fade Out"}}
)

// enableParam is the timeline option shared by filters with timeline support.
var enableParam = Param{Key: "enable", Type: ParamExpr, Doc: "Expression enabling the filter, e.g. `between(t,1,3)`."}

func videoCatalog() []Definition {
	return []Definition{
		{
			Name: "crop", Media: MediaVideo,
			Doc: "Crop the input video to the given dimensions. Width and height are expressions over `iw`/`ih`.",
			Params: []Param{
				{Key: "w", Aliases: []string{"out_w"}, Type: ParamExpr, DefaultVal: "iw", Doc: "Output width."},
				{Key: "h", Aliases: []string{"out_h"}, Type: ParamExpr, DefaultVal: "ih", Doc: "Output height."},
				{Key: "x", Type: ParamExpr, DefaultVal: "(in_w-out_w)/2", Doc: "Horizontal position of the left edge."},
				{Key: "y", Type: ParamExpr, DefaultVal: "(in_h-out_h)/2", Doc: "Vertical position of the top edge."},
				{Key: "keep_aspect", Type: ParamBool, DefaultVal: "0"},
				{Key: "exact", Type: ParamBool, DefaultVal: "0"},
			},
		},
		{
			Name: "scale", Media: MediaVideo,
			Doc: "Scale the input video. Use `-1` or `-2` for one dimension to keep the aspect ratio.",
			Params: []Param{
				{Key: "w", Aliases: []string{"width"}, Type: ParamExpr, Doc: "Output width."},
				{Key: "h", Aliases: []string{"height"}, Type: ParamExpr, Doc: "Output height."},
				{Key: "flags", Type: ParamString, DefaultVal: "bicubic", Doc: "libswscale scaling flags."},
				{Key: "interl", Type: ParamInt, Min: -1, Max: 1, Bounded: true, DefaultVal: "0"},
				{Key: "in_color_matrix", Type: ParamChoice, Choices: colorMatrices},
				{Key: "out_color_matrix", Type: ParamChoice, Choices: colorMatrices},
				{Key: "in_range", Type: ParamChoice, Choices: colorRanges},
				{Key: "out_range", Type: ParamChoice, Choices: colorRanges},
				{Key: "force_original_aspect_ratio", Type: ParamChoice, Choices: choices("disable", "decrease", "increase")},
				{Key: "force_divisible_by", Type: ParamInt, Min: 1, Max: 256, Bounded: true, DefaultVal: "1"},
				{Key: "eval", Type: ParamChoice, Choices: evalModes},
			},
		},
		{
			Name: "pad", Media: MediaVideo,
			Doc: "Add padding around the input and place it at `x`,`y`.",
			Params: []Param{
				{Key: "w", Aliases: []string{"width"}, Type: ParamExpr, DefaultVal: "iw"},
				{Key: "h", Aliases: []string{"height"}, Type: ParamExpr, DefaultVal: "ih"},
				{Key: "x", Type: ParamExpr, DefaultVal: "0"},
				{Key: "y", Type: ParamExpr, DefaultVal: "0"},
				{Key: "color", Type: ParamColor, DefaultVal: "black"},
				{Key: "eval", Type: ParamChoice, Choices: evalModes},
				{Key: "aspect", Type: ParamString},
			},
		},
		{
			Name: "fade", Media: MediaVideo,
			Doc: "Fade the input video in or out.",
			Params: []Param{
				{Key: "type", Aliases: []string{"t"}, Type: ParamChoice, Choices: fadeTypes, DefaultVal: "in"},
				{Key: "start_frame", Aliases: []string{"s"}, Type: ParamInt, Min: 0, Max: 1<<31 - 1, Bounded: true, DefaultVal: "0"},
				{Key: "nb_frames", Aliases: []string{"n"}, Type: ParamInt, Min: 1, Max: 1<<31 - 1, Bounded: true, DefaultVal: "25"},
				{Key: "alpha", Type: ParamBool, DefaultVal: "0"},
				{Key: "start_time", Aliases: []string{"st"}, Type: ParamDuration, DefaultVal: "0"},
				{Key: "duration", Aliases: []string{"d"}, Type: ParamDuration, DefaultVal: "0"},
				{Key: "color", Aliases: []string{"c"}, Type: ParamColor, DefaultVal: "black"},
			},
		},
		{
			Name: "fps", Media: MediaVideo,
			Doc: "Convert to a constant frame rate by duplicating or dropping frames.",
			Params: []Param{
				{Key: "fps", Type: ParamExpr, DefaultVal: "25", Doc: "Rate as a number, fraction or abbreviation such as `ntsc`."},
				{Key: "start_time", Type: ParamFloat},
				{Key: "round", Type: ParamChoice, Choices: choices("zero", "inf", "down", "up", "near"), DefaultVal: "near"},
				{Key: "eof_action", Type: ParamChoice, Choices: choices("round", "pass"), DefaultVal: "round"},
			},
		},
		{
			Name: "eq", Media: MediaVideo,
			Doc: "Adjust brightness, contrast, saturation and gamma.",
			Params: []Param{
				{Key: "contrast", Type: ParamFloat, Min: -1000, Max: 1000, Bounded: true, Expr: true, DefaultVal: "1"},
				{Key: "brightness", Type: ParamFloat, Min: -1, Max: 1, Bounded: true, Expr: true, DefaultVal: "0"},
				{Key: "saturation", Type: ParamFloat, Min: 0, Max: 3, Bounded: true, Expr: true, DefaultVal: "1"},
				{Key: "gamma", Type: ParamFloat, Min: 0.1, Max: 10, Bounded: true, Expr: true, DefaultVal: "1"},
				{Key: "gamma_r", Type: ParamFloat, Min: 0.1, Max: 10, Bounded: true, Expr: true, DefaultVal: "1"},
				{Key: "gamma_g", Type: ParamFloat, Min: 0.1, Max: 10, Bounded: true, Expr: true, DefaultVal: "1"},
				{Key: "gamma_b", Type: ParamFloat, Min: 0.1, Max: 10, Bounded: true, Expr: true, DefaultVal: "1"},
				{Key: "gamma_weight", Type: ParamFloat, Min: 0, Max: 1, Bounded: true, Expr: true, DefaultVal: "1"},
				{Key: "eval", Type: ParamChoice, Choices: evalModes},
				enableParam,
			},
		},
		{
			Name: "hue", Media: MediaVideo,
			Doc: "Modify hue and saturation.",
			Params: []Param{
				{Key: "h", Type: ParamExpr, Doc: "Hue angle in degrees."},
				{Key: "s", Type: ParamExpr, DefaultVal: "1", Doc: "Saturation in [-10,10]."},
				{Key: "H", Type: ParamExpr, Doc: "Hue angle in radians."},
				{Key: "b", Type: ParamExpr, DefaultVal: "0", Doc: "Brightness in [-10,10]."},
				enableParam,
			},
		},
		{
			Name: "transpose", Media: MediaVideo,
			Doc: "Transpose rows with columns, optionally flipping.",
			Params: []Param{
				{Key: "dir", Type: ParamChoice, DefaultVal: "cclock_flip", Choices: []Choice{
					{Value: "cclock_flip", Label: "CCW 90° + Flip"},
					{Value: "clock", Label: "CW 90°"},
					{Value: "cclock", Label: "CCW 90°"},
					{Value: "clock_flip", Label: "CW 90° + Flip"},
					{Value: "0"}, {Value: "1"}, {Value: "2"}, {Value: "3"},
				}},
				{Key: "passthrough", Type: ParamChoice, Choices: choices("none", "portrait", "landscape"), DefaultVal: "none"},
			},
		},
		{
			Name: "rotate", Media: MediaVideo,
			Doc: "Rotate by an arbitrary angle expressed in radians.",
			Params: []Param{
				{Key: "angle", Aliases: []string{"a"}, Type: ParamExpr, DefaultVal: "0"},
				{Key: "out_w", Aliases: []string{"ow"}, Type: ParamExpr, DefaultVal: "iw"},
				{Key: "out_h", Aliases: []string{"oh"}, Type: ParamExpr, DefaultVal: "ih"},
				{Key: "fillcolor", Aliases: []string{"c"}, Type: ParamColor, DefaultVal: "black"},
				{Key: "bilinear", Type: ParamBool, DefaultVal: "1"},
			},
		},
		{Name: "hflip", Media: MediaVideo, Doc: "Flip the input horizontally."},
		{Name: "vflip", Media: MediaVideo, Doc: "Flip the input vertically."},
		{Name: "reverse", Media: MediaVideo, Doc: "Reverse a clip. Buffers the whole clip in memory."},
		{
			Name: "setpts", Media: MediaVideo,
			Doc: "Change the presentation timestamps of video frames.",
			Params: []Param{
				{Key: "expr", Type: ParamExpr, Required: true, DefaultVal: "PTS"},
			},
		},
		{
			Name: "trim", Media: MediaVideo,
			Doc: "Keep one continuous section of the input.",
			Params: []Param{
				{Key: "start", Type: ParamDuration},
				{Key: "end", Type: ParamDuration},
				{Key: "start_pts", Type: ParamInt},
				{Key: "end_pts", Type: ParamInt},
				{Key: "duration", Type: ParamDuration},
				{Key: "start_frame", Type: ParamInt, Min: 0, Max: 1<<62, Bounded: true},
				{Key: "end_frame", Type: ParamInt, Min: 0, Max: 1<<62, Bounded: true},
			},
		},
		{
			Name: "drawtext", Media: MediaVideo,
			Doc: "Draw text on top of the video using libfreetype.",
			Params: []Param{
				{Key: "text", Type: ParamString},
				{Key: "textfile", Type: ParamString},
				{Key: "fontfile", Type: ParamString},
				{Key: "font", Type: ParamString, DefaultVal: "Sans"},
				{Key: "fontsize", Type: ParamExpr, DefaultVal: "16"},
				{Key: "fontcolor", Type: ParamColor, DefaultVal: "black"},
				{Key: "x", Type: ParamExpr, DefaultVal: "0"},
				{Key: "y", Type: ParamExpr, DefaultVal: "0"},
				{Key: "box", Type: ParamBool, DefaultVal: "0"},
				{Key: "boxcolor", Type: ParamColor, DefaultVal: "white"},
				{Key: "boxborderw", Type: ParamString, DefaultVal: "0"},
				{Key: "borderw", Type: ParamInt, Min: 0, Max: 1 << 16, Bounded: true, DefaultVal: "0"},
				{Key: "bordercolor", Type: ParamColor, DefaultVal: "black"},
				{Key: "shadowx", Type: ParamInt, DefaultVal: "0"},
				{Key: "shadowy", Type: ParamInt, DefaultVal: "0"},
				{Key: "line_spacing", Type: ParamInt, DefaultVal: "0"},
				{Key: "alpha", Type: ParamExpr, DefaultVal: "1"},
				enableParam,
			},
		},
		{
			Name: "unsharp", Media: MediaVideo,
			Doc: "Sharpen or blur the input.",
			Params: []Param{
				{Key: "luma_msize_x", Aliases: []string{"lx"}, Type: ParamInt, Min: 3, Max: 23, Bounded: true, DefaultVal: "5"},
				{Key: "luma_msize_y", Aliases: []string{"ly"}, Type: ParamInt, Min: 3, Max: 23, Bounded: true, DefaultVal: "5"},
				{Key: "luma_amount", Aliases: []string{"la"}, Type: ParamFloat, Min: -2, Max: 5, Bounded: true, DefaultVal: "1"},
				{Key: "chroma_msize_x", Aliases: []string{"cx"}, Type: ParamInt, Min: 3, Max: 23, Bounded: true, DefaultVal: "5"},
				{Key: "chroma_msize_y", Aliases: []string{"cy"}, Type: ParamInt, Min: 3, Max: 23, Bounded: true, DefaultVal: "5"},
				{Key: "chroma_amount", Aliases: []string{"ca"}, Type: ParamFloat, Min: -2, Max: 5, Bounded: true, DefaultVal: "0"},
				enableParam,
			},
		},
		{
			Name: "hqdn3d", Media: MediaVideo,
			Doc: "High precision 3D denoiser.",
			Params: []Param{
				{Key: "luma_spatial", Type: ParamFloat, Min: 0, Max: 1 << 20, Bounded: true, DefaultVal: "4"},
				{Key: "chroma_spatial", Type: ParamFloat, Min: 0, Max: 1 << 20, Bounded: true, DefaultVal: "3"},
				{Key: "luma_tmp", Type: ParamFloat, Min: 0, Max: 1 << 20, Bounded: true, DefaultVal: "6"},
				{Key: "chroma_tmp", Type: ParamFloat, Min: 0, Max: 1 << 20, Bounded: true, DefaultVal: "4.5"},
			},
		},
		{
			Name: "vignette", Media: MediaVideo,
			Doc: "Apply a natural vignetting effect.",
			Params: []Param{
				{Key: "angle", Aliases: []string{"a"}, Type: ParamExpr, DefaultVal: "PI/5"},
				{Key: "x0", Type: ParamExpr, DefaultVal: "w/2"},
				{Key: "y0", Type: ParamExpr, DefaultVal: "h/2"},
				{Key: "mode", Type: ParamChoice, Choices: choices("forward", "backward"), DefaultVal: "forward"},
				{Key: "eval", Type: ParamChoice, Choices: evalModes},
				{Key: "dither", Type: ParamBool, DefaultVal: "1"},
				{Key: "aspect", Type: ParamString, DefaultVal: "1/1"},
			},
		},
		{
			Name: "colorbalance", Media: MediaVideo,
			Doc: "Shift shadows (`*s`), midtones (`*m`) and highlights (`*h`) per channel.",
			Params: append(balanceParams(), Param{Key: "pl", Type: ParamBool, DefaultVal: "0", Doc: "Preserve lightness."}),
		},
		{
			Name: "colortemperature", Media: MediaVideo,
			Doc: "Adjust color temperature.",
			Params: []Param{
				{Key: "temperature", Type: ParamFloat, Min: 1000, Max: 40000, Bounded: true, DefaultVal: "6500"},
				{Key: "mix", Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "1"},
				{Key: "pl", Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "0"},
			},
		},
		{
			Name: "curves", Media: MediaVideo,
			Doc: "Apply color adjustments using curves.",
			Params: []Param{
				{Key: "preset", Type: ParamChoice, DefaultVal: "none", Choices: choices(
					"none", "color_negative", "cross_process", "darker", "increase_contrast",
					"lighter", "linear_contrast", "medium_contrast", "negative", "strong_contrast", "vintage")},
				{Key: "master", Aliases: []string{"m"}, Type: ParamString, Doc: "Key points such as `0/0 0.5/0.6 1/1`."},
				{Key: "red", Aliases: []string{"r"}, Type: ParamString},
				{Key: "green", Aliases: []string{"g"}, Type: ParamString},
				{Key: "blue", Aliases: []string{"b"}, Type: ParamString},
				{Key: "all", Type: ParamString},
				{Key: "psfile", Type: ParamString},
			},
		},
		{
			Name: "colorchannelmixer", Media: MediaVideo,
			Doc:    "Remix color channels; each output channel is a weighted sum of the input channels.",
			Params: mixerParams(),
		},
		{
			Name: "tile", Media: MediaVideo,
			Doc: "Tile several successive frames together.",
			Params: []Param{
				{Key: "layout", Type: ParamString, DefaultVal: "6x5"},
				{Key: "nb_frames", Type: ParamInt, Min: 0, Max: 1 << 20, Bounded: true, DefaultVal: "0"},
				{Key: "margin", Type: ParamInt, Min: 0, Max: 1024, Bounded: true, DefaultVal: "0"},
				{Key: "padding", Type: ParamInt, Min: 0, Max: 1024, Bounded: true, DefaultVal: "0"},
				{Key: "color", Type: ParamColor, DefaultVal: "black"},
				{Key: "overlap", Type: ParamInt, Min: 0, Max: 1 << 20, Bounded: true, DefaultVal: "0"},
				{Key: "init_padding", Type: ParamInt, Min: 0, Max: 1 << 20, Bounded: true, DefaultVal: "0"},
			},
		},
		{
			Name: "format", Media: MediaVideo,
			Doc: "Convert to one of the listed pixel formats.",
			Params: []Param{
				{Key: "pix_fmts", Type: ParamString, Required: true, Doc: "`|`-separated list such as `yuv420p|yuv444p`."},
			},
		},
	}
}

func balanceParams() []Param {
	var out []Param
	for _, tone := range []string{"s", "m", "h"} {
		for _, ch := range []string{"r", "g", "b"} {
			out = append(out, Param{Key: ch + tone, Type: ParamFloat, Min: -1, Max: 1, Bounded: true, DefaultVal: "0"})
		}
	}
	return out
}

func mixerParams() []Param {
	var out []Param
	for _, dst := range []string{"r", "g", "b", "a"} {
		for _, src := range []string{"r", "g", "b", "a"} {
			def := "0"
			if dst == src {
				def = "1"
			}
			out = append(out, Param{Key: dst + src, Type: ParamFloat, Min: -2, Max: 2, Bounded: true, DefaultVal: def})
		}
	}
	return out
}
