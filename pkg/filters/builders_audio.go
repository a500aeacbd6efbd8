package filters

import "time"

// AFade builds the afade filter.
type AFade[S Sink] struct{ typed[S] }

func NewAFade[S Sink](reg *Registry, host S) *AFade[S] {
	return &AFade[S]{typed[S]{New(reg, host, "afade")}}
}

func (f *AFade[S]) Type(v string) *AFade[S]            { f.b.Set("type", v); return f }
func (f *AFade[S]) StartSample(n int64) *AFade[S]      { f.b.Set("start_sample", n); return f }
func (f *AFade[S]) NbSamples(n int64) *AFade[S]        { f.b.Set("nb_samples", n); return f }
func (f *AFade[S]) StartTime(s float64) *AFade[S]      { f.b.Set("start_time", s); return f }
func (f *AFade[S]) StartAt(d time.Duration) *AFade[S]  { f.b.Set("start_time", d); return f }
func (f *AFade[S]) Duration(d time.Duration) *AFade[S] { f.b.Set("duration", d); return f }
func (f *AFade[S]) Curve(v string) *AFade[S]           { f.b.Set("curve", v); return f }

// Volume builds the volume filter.
type Volume[S Sink] struct{ typed[S] }

func NewVolume[S Sink](reg *Registry, host S) *Volume[S] {
	return &Volume[S]{typed[S]{New(reg, host, "volume")}}
}

// Factor sets a linear gain.
func (v *Volume[S]) Factor(f float64) *Volume[S] { v.b.Set("volume", f); return v }

// Level sets the volume as an expression or dB value such as "-3dB".
func (v *Volume[S]) Level(expr string) *Volume[S]      { v.b.Set("volume", Expr(expr)); return v }
func (v *Volume[S]) Precision(p string) *Volume[S]     { v.b.Set("precision", p); return v }
func (v *Volume[S]) Eval(mode string) *Volume[S]       { v.b.Set("eval", mode); return v }
func (v *Volume[S]) ReplayGain(mode string) *Volume[S] { v.b.Set("replaygain", mode); return v }
func (v *Volume[S]) Enable(expr string) *Volume[S]     { v.b.Set("enable", Expr(expr)); return v }

// ATempo builds the atempo filter.
type ATempo[S Sink] struct{ typed[S] }

func NewATempo[S Sink](reg *Registry, host S) *ATempo[S] {
	return &ATempo[S]{typed[S]{New(reg, host, "atempo")}}
}

func (a *ATempo[S]) Tempo(v float64) *ATempo[S] { a.b.Set("tempo", v); return a }

// Equalizer builds the equalizer filter.
type Equalizer[S Sink] struct{ typed[S] }

func NewEqualizer[S Sink](reg *Registry, host S) *Equalizer[S] {
	return &Equalizer[S]{typed[S]{New(reg, host, "equalizer")}}
}

func (e *Equalizer[S]) Frequency(hz float64) *Equalizer[S]   { e.b.Set("frequency", hz); return e }
func (e *Equalizer[S]) WidthType(t string) *Equalizer[S]     { e.b.Set("width_type", t); return e }
func (e *Equalizer[S]) Width(w float64) *Equalizer[S]        { e.b.Set("width", w); return e }
func (e *Equalizer[S]) Gain(db float64) *Equalizer[S]        { e.b.Set("gain", db); return e }
func (e *Equalizer[S]) Mix(v float64) *Equalizer[S]          { e.b.Set("mix", v); return e }
func (e *Equalizer[S]) Channels(layout string) *Equalizer[S] { e.b.Set("channels", layout); return e }
func (e *Equalizer[S]) Normalize(v bool) *Equalizer[S]       { e.b.Set("normalize", v); return e }

// Loudnorm builds the loudnorm filter.
type Loudnorm[S Sink] struct{ typed[S] }

func NewLoudnorm[S Sink](reg *Registry, host S) *Loudnorm[S] {
	return &Loudnorm[S]{typed[S]{New(reg, host, "loudnorm")}}
}

func (l *Loudnorm[S]) Integrated(lufs float64) *Loudnorm[S]  { l.b.Set("I", lufs); return l }
func (l *Loudnorm[S]) LoudnessRange(v float64) *Loudnorm[S]  { l.b.Set("LRA", v); return l }
func (l *Loudnorm[S]) TruePeak(db float64) *Loudnorm[S]      { l.b.Set("TP", db); return l }
func (l *Loudnorm[S]) MeasuredI(v float64) *Loudnorm[S]      { l.b.Set("measured_I", v); return l }
func (l *Loudnorm[S]) MeasuredLRA(v float64) *Loudnorm[S]    { l.b.Set("measured_LRA", v); return l }
func (l *Loudnorm[S]) MeasuredTP(v float64) *Loudnorm[S]     { l.b.Set("measured_TP", v); return l }
func (l *Loudnorm[S]) MeasuredThresh(v float64) *Loudnorm[S] { l.b.Set("measured_thresh", v); return l }
func (l *Loudnorm[S]) Offset(v float64) *Loudnorm[S]         { l.b.Set("offset", v); return l }
func (l *Loudnorm[S]) Linear(v bool) *Loudnorm[S]            { l.b.Set("linear", v); return l }
func (l *Loudnorm[S]) DualMono(v bool) *Loudnorm[S]          { l.b.Set("dual_mono", v); return l }
func (l *Loudnorm[S]) PrintFormat(v string) *Loudnorm[S]     { l.b.Set("print_format", v); return l }

// ACompressor builds the acompressor filter.
type ACompressor[S Sink] struct{ typed[S] }

func NewACompressor[S Sink](reg *Registry, host S) *ACompressor[S] {
	return &ACompressor[S]{typed[S]{New(reg, host, "acompressor")}}
}

func (c *ACompressor[S]) LevelIn(v float64) *ACompressor[S]   { c.b.Set("level_in", v); return c }
func (c *ACompressor[S]) Mode(v string) *ACompressor[S]       { c.b.Set("mode", v); return c }
func (c *ACompressor[S]) Threshold(v float64) *ACompressor[S] { c.b.Set("threshold", v); return c }
func (c *ACompressor[S]) Ratio(v float64) *ACompressor[S]     { c.b.Set("ratio", v); return c }
func (c *ACompressor[S]) Attack(ms float64) *ACompressor[S]   { c.b.Set("attack", ms); return c }
func (c *ACompressor[S]) Release(ms float64) *ACompressor[S]  { c.b.Set("release", ms); return c }
func (c *ACompressor[S]) Makeup(v float64) *ACompressor[S]    { c.b.Set("makeup", v); return c }
func (c *ACompressor[S]) Knee(v float64) *ACompressor[S]      { c.b.Set("knee", v); return c }
func (c *ACompressor[S]) Detection(v string) *ACompressor[S]  { c.b.Set("detection", v); return c }
func (c *ACompressor[S]) Mix(v float64) *ACompressor[S]       { c.b.Set("mix", v); return c }
