package filters

import (
	"strconv"
	"time"
)

// Crop builds the crop filter.
type Crop[S Sink] struct{ typed[S] }

func NewCrop[S Sink](reg *Registry, host S) *Crop[S] {
	return &Crop[S]{typed[S]{New(reg, host, "crop")}}
}

func (c *Crop[S]) W(expr string) *Crop[S]     { c.b.Set("w", Expr(expr)); return c }
func (c *Crop[S]) H(expr string) *Crop[S]     { c.b.Set("h", Expr(expr)); return c }
func (c *Crop[S]) X(expr string) *Crop[S]     { c.b.Set("x", Expr(expr)); return c }
func (c *Crop[S]) Y(expr string) *Crop[S]     { c.b.Set("y", Expr(expr)); return c }
func (c *Crop[S]) KeepAspect(v bool) *Crop[S] { c.b.Set("keep_aspect", v); return c }
func (c *Crop[S]) Exact(v bool) *Crop[S]      { c.b.Set("exact", v); return c }

// Rect sets all four crop values in pixels.
func (c *Crop[S]) Rect(w, h, x, y int) *Crop[S] {
	return c.W(strconv.Itoa(w)).H(strconv.Itoa(h)).X(strconv.Itoa(x)).Y(strconv.Itoa(y))
}

// Scale builds the scale filter.
type Scale[S Sink] struct{ typed[S] }

func NewScale[S Sink](reg *Registry, host S) *Scale[S] {
	return &Scale[S]{typed[S]{New(reg, host, "scale")}}
}

func (s *Scale[S]) W(expr string) *Scale[S]     { s.b.Set("w", Expr(expr)); return s }
func (s *Scale[S]) H(expr string) *Scale[S]     { s.b.Set("h", Expr(expr)); return s }
func (s *Scale[S]) Width(w int) *Scale[S]       { s.b.Set("w", w); return s }
func (s *Scale[S]) Height(h int) *Scale[S]      { s.b.Set("h", h); return s }
func (s *Scale[S]) Flags(v string) *Scale[S]    { s.b.Set("flags", v); return s }
func (s *Scale[S]) Eval(v string) *Scale[S]     { s.b.Set("eval", v); return s }
func (s *Scale[S]) InRange(v string) *Scale[S]  { s.b.Set("in_range", v); return s }
func (s *Scale[S]) OutRange(v string) *Scale[S] { s.b.Set("out_range", v); return s }

func (s *Scale[S]) ForceOriginalAspectRatio(mode string) *Scale[S] {
	s.b.Set("force_original_aspect_ratio", mode)
	return s
}

func (s *Scale[S]) ForceDivisibleBy(n int) *Scale[S] {
	s.b.Set("force_divisible_by", n)
	return s
}

// Pad builds the pad filter.
type Pad[S Sink] struct{ typed[S] }

func NewPad[S Sink](reg *Registry, host S) *Pad[S] {
	return &Pad[S]{typed[S]{New(reg, host, "pad")}}
}

func (p *Pad[S]) W(expr string) *Pad[S]   { p.b.Set("w", Expr(expr)); return p }
func (p *Pad[S]) H(expr string) *Pad[S]   { p.b.Set("h", Expr(expr)); return p }
func (p *Pad[S]) X(expr string) *Pad[S]   { p.b.Set("x", Expr(expr)); return p }
func (p *Pad[S]) Y(expr string) *Pad[S]   { p.b.Set("y", Expr(expr)); return p }
func (p *Pad[S]) Color(c string) *Pad[S]  { p.b.Set("color", c); return p }
func (p *Pad[S]) Aspect(v string) *Pad[S] { p.b.Set("aspect", v); return p }
func (p *Pad[S]) Eval(v string) *Pad[S]   { p.b.Set("eval", v); return p }

// Fade builds the fade filter.
type Fade[S Sink] struct{ typed[S] }

func NewFade[S Sink](reg *Registry, host S) *Fade[S] {
	return &Fade[S]{typed[S]{New(reg, host, "fade")}}
}

func (f *Fade[S]) Type(v string) *Fade[S]    { f.b.Set("type", v); return f }
func (f *Fade[S]) StartFrame(n int) *Fade[S] { f.b.Set("start_frame", n); return f }
func (f *Fade[S]) NbFrames(n int) *Fade[S]   { f.b.Set("nb_frames", n); return f }
func (f *Fade[S]) Alpha(v bool) *Fade[S]     { f.b.Set("alpha", v); return f }
func (f *Fade[S]) Color(c string) *Fade[S]   { f.b.Set("color", c); return f }

// StartTime takes seconds; see StartAt for a time.Duration.
func (f *Fade[S]) StartTime(seconds float64) *Fade[S] { f.b.Set("start_time", seconds); return f }
func (f *Fade[S]) StartAt(d time.Duration) *Fade[S]   { f.b.Set("start_time", d); return f }
func (f *Fade[S]) Duration(d time.Duration) *Fade[S]  { f.b.Set("duration", d); return f }

// FPS builds the fps filter.
type FPS[S Sink] struct{ typed[S] }

func NewFPS[S Sink](reg *Registry, host S) *FPS[S] {
	return &FPS[S]{typed[S]{New(reg, host, "fps")}}
}

func (f *FPS[S]) Rate(v float64) *FPS[S]       { f.b.Set("fps", v); return f }
func (f *FPS[S]) RateExpr(expr string) *FPS[S] { f.b.Set("fps", Expr(expr)); return f }
func (f *FPS[S]) StartTime(v float64) *FPS[S]  { f.b.Set("start_time", v); return f }
func (f *FPS[S]) Round(mode string) *FPS[S]    { f.b.Set("round", mode); return f }
func (f *FPS[S]) EOFAction(v string) *FPS[S]   { f.b.Set("eof_action", v); return f }

// Eq builds the eq filter.
type Eq[S Sink] struct{ typed[S] }

func NewEq[S Sink](reg *Registry, host S) *Eq[S] {
	return &Eq[S]{typed[S]{New(reg, host, "eq")}}
}

func (e *Eq[S]) Contrast(v float64) *Eq[S]    { e.b.Set("contrast", v); return e }
func (e *Eq[S]) Brightness(v float64) *Eq[S]  { e.b.Set("brightness", v); return e }
func (e *Eq[S]) Saturation(v float64) *Eq[S]  { e.b.Set("saturation", v); return e }
func (e *Eq[S]) Gamma(v float64) *Eq[S]       { e.b.Set("gamma", v); return e }
func (e *Eq[S]) GammaR(v float64) *Eq[S]      { e.b.Set("gamma_r", v); return e }
func (e *Eq[S]) GammaG(v float64) *Eq[S]      { e.b.Set("gamma_g", v); return e }
func (e *Eq[S]) GammaB(v float64) *Eq[S]      { e.b.Set("gamma_b", v); return e }
func (e *Eq[S]) GammaWeight(v float64) *Eq[S] { e.b.Set("gamma_weight", v); return e }
func (e *Eq[S]) Eval(v string) *Eq[S]         { e.b.Set("eval", v); return e }
func (e *Eq[S]) Enable(expr string) *Eq[S]    { e.b.Set("enable", Expr(expr)); return e }

// Transpose builds the transpose filter.
type Transpose[S Sink] struct{ typed[S] }

func NewTranspose[S Sink](reg *Registry, host S) *Transpose[S] {
	return &Transpose[S]{typed[S]{New(reg, host, "transpose")}}
}

func (t *Transpose[S]) Dir(v string) *Transpose[S]         { t.b.Set("dir", v); return t }
func (t *Transpose[S]) Passthrough(v string) *Transpose[S] { t.b.Set("passthrough", v); return t }

// SetPTS builds the setpts filter.
type SetPTS[S Sink] struct{ typed[S] }

func NewSetPTS[S Sink](reg *Registry, host S) *SetPTS[S] {
	return &SetPTS[S]{typed[S]{New(reg, host, "setpts")}}
}

func (s *SetPTS[S]) Expr(expr string) *SetPTS[S] { s.b.Set("expr", Expr(expr)); return s }

// DrawText builds the drawtext filter.
type DrawText[S Sink] struct{ typed[S] }

func NewDrawText[S Sink](reg *Registry, host S) *DrawText[S] {
	return &DrawText[S]{typed[S]{New(reg, host, "drawtext")}}
}

func (d *DrawText[S]) Text(v string) *DrawText[S]        { d.b.Set("text", v); return d }
func (d *DrawText[S]) TextFile(v string) *DrawText[S]    { d.b.Set("textfile", v); return d }
func (d *DrawText[S]) FontFile(v string) *DrawText[S]    { d.b.Set("fontfile", v); return d }
func (d *DrawText[S]) Font(v string) *DrawText[S]        { d.b.Set("font", v); return d }
func (d *DrawText[S]) FontSize(n int) *DrawText[S]       { d.b.Set("fontsize", n); return d }
func (d *DrawText[S]) FontColor(c string) *DrawText[S]   { d.b.Set("fontcolor", c); return d }
func (d *DrawText[S]) X(expr string) *DrawText[S]        { d.b.Set("x", Expr(expr)); return d }
func (d *DrawText[S]) Y(expr string) *DrawText[S]        { d.b.Set("y", Expr(expr)); return d }
func (d *DrawText[S]) Box(v bool) *DrawText[S]           { d.b.Set("box", v); return d }
func (d *DrawText[S]) BoxColor(c string) *DrawText[S]    { d.b.Set("boxcolor", c); return d }
func (d *DrawText[S]) BoxBorderW(v string) *DrawText[S]  { d.b.Set("boxborderw", v); return d }
func (d *DrawText[S]) BorderW(n int) *DrawText[S]        { d.b.Set("borderw", n); return d }
func (d *DrawText[S]) BorderColor(c string) *DrawText[S] { d.b.Set("bordercolor", c); return d }
func (d *DrawText[S]) ShadowX(n int) *DrawText[S]        { d.b.Set("shadowx", n); return d }
func (d *DrawText[S]) ShadowY(n int) *DrawText[S]        { d.b.Set("shadowy", n); return d }
func (d *DrawText[S]) LineSpacing(n int) *DrawText[S]    { d.b.Set("line_spacing", n); return d }
func (d *DrawText[S]) Alpha(expr string) *DrawText[S]    { d.b.Set("alpha", Expr(expr)); return d }
func (d *DrawText[S]) Enable(expr string) *DrawText[S]   { d.b.Set("enable", Expr(expr)); return d }

// Trim builds the trim filter.
type Trim[S Sink] struct{ typed[S] }

func NewTrim[S Sink](reg *Registry, host S) *Trim[S] {
	return &Trim[S]{typed[S]{New(reg, host, "trim")}}
}

func (t *Trim[S]) Start(d time.Duration) *Trim[S]    { t.b.Set("start", d); return t }
func (t *Trim[S]) End(d time.Duration) *Trim[S]      { t.b.Set("end", d); return t }
func (t *Trim[S]) Duration(d time.Duration) *Trim[S] { t.b.Set("duration", d); return t }
func (t *Trim[S]) StartPTS(v int64) *Trim[S]         { t.b.Set("start_pts", v); return t }
func (t *Trim[S]) EndPTS(v int64) *Trim[S]           { t.b.Set("end_pts", v); return t }
func (t *Trim[S]) StartFrame(n int64) *Trim[S]       { t.b.Set("start_frame", n); return t }
func (t *Trim[S]) EndFrame(n int64) *Trim[S]         { t.b.Set("end_frame", n); return t }
