package filters

var (
	widthTypes = []Choice{
		{Value: "h", Label: "Hz"},
		{Value: "q", Label: "Q-Factor"},
		{Value: "o", Label: "Octave"},
		{Value: "s", Label: "Slope"},
		{Value: "k", Label: "kHz"},
	}
	fadeCurves = choices("nofade", "tri", "qsin", "esin", "hsin", "log", "ipar", "qua", "cub", "squ",
		"cbr", "par", "exp", "iqsin", "ihsin", "dese", "desi", "losi", "sinc", "isinc",
		"quat", "quatr", "qsin2", "hsin2")
	dynamicsModes = choices("downward", "upward")
	detections    = choices("peak", "rms")
	links         = choices("average", "maximum")
)

func biquadParams(freqDefault string) []Param {
	return []Param{
		{Key: "frequency", Aliases: []string{"f"}, Type: ParamFloat, Min: 0, Max: 999999, Bounded: true, DefaultVal: freqDefault},
		{Key: "width_type", Aliases: []string{"t"}, Type: ParamChoice, Choices: widthTypes, DefaultVal: "q"},
		{Key: "width", Aliases: []string{"w"}, Type: ParamFloat, Min: 0, Max: 99999, Bounded: true, DefaultVal: "0.707"},
		{Key: "mix", Aliases: []string{"m"}, Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "1"},
		{Key: "channels", Aliases: []string{"c"}, Type: ParamString, DefaultVal: "all"},
		{Key: "normalize", Aliases: []string{"n"}, Type: ParamBool, DefaultVal: "0"},
	}
}

func passParams(freqDefault string) []Param {
	ps := biquadParams(freqDefault)
	return append(ps[:1], append([]Param{
		{Key: "poles", Aliases: []string{"p"}, Type: ParamInt, Min: 1, Max: 2, Bounded: true, DefaultVal: "2"},
	}, ps[1:]...)...)
}

func trimParams() []Param {
	return []Param{
		{Key: "start", Type: ParamDuration},
		{Key: "end", Type: ParamDuration},
		{Key: "start_pts", Type: ParamInt},
		{Key: "end_pts", Type: ParamInt},
		{Key: "duration", Type: ParamDuration},
		{Key: "start_sample", Type: ParamInt, Min: 0, Max: 1 << 62, Bounded: true},
		{Key: "end_sample", Type: ParamInt, Min: 0, Max: 1 << 62, Bounded: true},
	}
}

func audioCatalog() []Definition {
	return []Definition{
		{
			Name: "afade", Media: MediaAudio,
			Doc: "Fade the input audio in or out.",
			Params: []Param{
				{Key: "type", Aliases: []string{"t"}, Type: ParamChoice, Choices: fadeTypes, DefaultVal: "in"},
				{Key: "start_sample", Aliases: []string{"ss"}, Type: ParamInt, Min: 0, Max: 1 << 62, Bounded: true, DefaultVal: "0"},
				{Key: "nb_samples", Aliases: []string{"ns"}, Type: ParamInt, Min: 1, Max: 1 << 62, Bounded: true, DefaultVal: "44100"},
				{Key: "start_time", Aliases: []string{"st"}, Type: ParamDuration, DefaultVal: "0"},
				{Key: "duration", Aliases: []string{"d"}, Type: ParamDuration, DefaultVal: "0"},
				{Key: "curve", Aliases: []string{"c"}, Type: ParamChoice, Choices: fadeCurves, DefaultVal: "tri"},
			},
		},
		{
			Name: "volume", Media: MediaAudio,
			Doc: "Adjust the input audio volume. Accepts a factor or a dB value such as `3dB`.",
			Params: []Param{
				{Key: "volume", Type: ParamExpr, DefaultVal: "1.0"},
				{Key: "precision", Type: ParamChoice, Choices: choices("fixed", "float", "double"), DefaultVal: "float"},
				{Key: "eval", Type: ParamChoice, Choices: choices("once", "frame"), DefaultVal: "once"},
				{Key: "replaygain", Type: ParamChoice, Choices: choices("drop", "ignore", "track", "album"), DefaultVal: "drop"},
				{Key: "replaygain_preamp", Type: ParamFloat, Min: -15, Max: 15, Bounded: true, DefaultVal: "0"},
				{Key: "replaygain_noclip", Type: ParamBool, DefaultVal: "1"},
				enableParam,
			},
		},
		{
			Name: "atempo", Media: MediaAudio,
			Doc: "Adjust audio tempo without changing pitch.",
			Params: []Param{
				{Key: "tempo", Type: ParamFloat, Min: 0.5, Max: 100, Bounded: true, DefaultVal: "1"},
			},
		},
		{
			Name: "equalizer", Media: MediaAudio,
			Doc: "Two-pole peaking equalisation filter.",
			Params: append(biquadParams("0"), Param{
				Key: "gain", Aliases: []string{"g"}, Type: ParamFloat, Min: -900, Max: 900, Bounded: true, DefaultVal: "0",
			}),
		},
		{Name: "highpass", Media: MediaAudio, Doc: "High-pass filter.", Params: passParams("3000")},
		{Name: "lowpass", Media: MediaAudio, Doc: "Low-pass filter.", Params: passParams("500")},
		{
			Name: "acompressor", Media: MediaAudio,
			Doc: "Reduce the dynamic range of the signal. `threshold` is linear, not dB.",
			Params: []Param{
				{Key: "level_in", Type: ParamFloat, Min: 0.015625, Max: 64, Bounded: true, DefaultVal: "1"},
				{Key: "mode", Type: ParamChoice, Choices: dynamicsModes, DefaultVal: "downward"},
				{Key: "threshold", Type: ParamFloat, Min: 0.000976563, Max: 1, Bounded: true, DefaultVal: "0.125"},
				{Key: "ratio", Type: ParamFloat, Min: 1, Max: 20, Bounded: true, DefaultVal: "2"},
				{Key: "attack", Type: ParamFloat, Min: 0.01, Max: 2000, Bounded: true, DefaultVal: "20"},
				{Key: "release", Type: ParamFloat, Min: 0.01, Max: 9000, Bounded: true, DefaultVal: "250"},
				{Key: "makeup", Type: ParamFloat, Min: 1, Max: 64, Bounded: true, DefaultVal: "1"},
				{Key: "knee", Type: ParamFloat, Min: 1, Max: 8, Bounded: true, DefaultVal: "2.82843"},
				{Key: "link", Type: ParamChoice, Choices: links, DefaultVal: "average"},
				{Key: "detection", Type: ParamChoice, Choices: detections, DefaultVal: "rms"},
				{Key: "level_sc", Type: ParamFloat, Min: 0.015625, Max: 64, Bounded: true, DefaultVal: "1"},
				{Key: "mix", Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "1"},
			},
		},
		{
			Name: "agate", Media: MediaAudio,
			Doc: "Noise gate. `threshold` and `range` are linear.",
			Params: []Param{
				{Key: "level_in", Type: ParamFloat, Min: 0.015625, Max: 64, Bounded: true, DefaultVal: "1"},
				{Key: "mode", Type: ParamChoice, Choices: dynamicsModes, DefaultVal: "downward"},
				{Key: "range", Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "0.06125"},
				{Key: "threshold", Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "0.125"},
				{Key: "ratio", Type: ParamFloat, Min: 1, Max: 9000, Bounded: true, DefaultVal: "2"},
				{Key: "attack", Type: ParamFloat, Min: 0.01, Max: 9000, Bounded: true, DefaultVal: "20"},
				{Key: "release", Type: ParamFloat, Min: 0.01, Max: 9000, Bounded: true, DefaultVal: "250"},
				{Key: "makeup", Type: ParamFloat, Min: 1, Max: 64, Bounded: true, DefaultVal: "1"},
				{Key: "knee", Type: ParamFloat, Min: 1, Max: 8, Bounded: true, DefaultVal: "2.828427125"},
				{Key: "detection", Type: ParamChoice, Choices: detections, DefaultVal: "rms"},
				{Key: "link", Type: ParamChoice, Choices: links, DefaultVal: "average"},
			},
		},
		{
			Name: "loudnorm", Media: MediaAudio,
			Doc: "EBU R128 loudness normalization.",
			Params: []Param{
				{Key: "I", Aliases: []string{"i"}, Type: ParamFloat, Min: -70, Max: -5, Bounded: true, DefaultVal: "-24", Doc: "Integrated loudness target."},
				{Key: "LRA", Aliases: []string{"lra"}, Type: ParamFloat, Min: 1, Max: 50, Bounded: true, DefaultVal: "7"},
				{Key: "TP", Aliases: []string{"tp"}, Type: ParamFloat, Min: -9, Max: 0, Bounded: true, DefaultVal: "-2"},
				{Key: "measured_I", Aliases: []string{"measured_i"}, Type: ParamFloat, Min: -99, Max: 0, Bounded: true},
				{Key: "measured_LRA", Aliases: []string{"measured_lra"}, Type: ParamFloat, Min: 0, Max: 99, Bounded: true},
				{Key: "measured_TP", Aliases: []string{"measured_tp"}, Type: ParamFloat, Min: -99, Max: 99, Bounded: true},
				{Key: "measured_thresh", Type: ParamFloat, Min: -99, Max: 0, Bounded: true},
				{Key: "offset", Type: ParamFloat, Min: -99, Max: 99, Bounded: true, DefaultVal: "0"},
				{Key: "linear", Type: ParamBool, DefaultVal: "1"},
				{Key: "dual_mono", Type: ParamBool, DefaultVal: "0"},
				{Key: "print_format", Type: ParamChoice, Choices: choices("none", "json", "summary"), DefaultVal: "none"},
			},
		},
		{
			Name: "dynaudnorm", Media: MediaAudio,
			Doc: "Dynamic audio normalizer.",
			Params: []Param{
				{Key: "framelen", Aliases: []string{"f"}, Type: ParamInt, Min: 10, Max: 8000, Bounded: true, DefaultVal: "500"},
				{Key: "gausssize", Aliases: []string{"g"}, Type: ParamInt, Min: 3, Max: 301, Bounded: true, DefaultVal: "31"},
				{Key: "peak", Aliases: []string{"p"}, Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "0.95"},
				{Key: "maxgain", Aliases: []string{"m"}, Type: ParamFloat, Min: 1, Max: 100, Bounded: true, DefaultVal: "10"},
				{Key: "targetrms", Aliases: []string{"r"}, Type: ParamFloat, Min: 0, Max: 1, Bounded: true, DefaultVal: "0"},
				{Key: "coupling", Aliases: []string{"n"}, Type: ParamBool, DefaultVal: "1"},
				{Key: "correctdc", Aliases: []string{"c"}, Type: ParamBool, DefaultVal: "0"},
				{Key: "altboundary", Aliases: []string{"b"}, Type: ParamBool, DefaultVal: "0"},
				{Key: "compress", Aliases: []string{"s"}, Type: ParamFloat, Min: 0, Max: 30, Bounded: true, DefaultVal: "0"},
			},
		},
		{
			Name: "aresample", Media: MediaAudio,
			Doc: "Resample the input audio.",
			Params: []Param{
				{Key: "sample_rate", Type: ParamInt, Min: 0, Max: 1<<31 - 1, Bounded: true},
				{Key: "async", Type: ParamFloat, Min: 0, Max: 1 << 30, Bounded: true},
				{Key: "resampler", Type: ParamChoice, Choices: choices("swr", "soxr"), DefaultVal: "swr"},
				{Key: "first_pts", Type: ParamInt},
			},
		},
		{Name: "atrim", Media: MediaAudio, Doc: "Keep one continuous section of the input audio.", Params: trimParams()},
		{
			Name: "asetpts", Media: MediaAudio,
			Doc: "Change the presentation timestamps of audio frames.",
			Params: []Param{
				{Key: "expr", Type: ParamExpr, Required: true, DefaultVal: "PTS"},
			},
		},
		{Name: "areverse", Media: MediaAudio, Doc: "Reverse an audio clip. Buffers the whole clip in memory."},
	}
}
