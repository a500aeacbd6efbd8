package ffmpeg

import "thirdcoast.systems/filtergraph/pkg/filters"

// Filter starts a builder for any registered filter. Build appends the
// filter to the command and returns the command.
func (c *Command) Filter(name string) *filters.Builder[*Command] {
	return filters.New(c.registry, c, name)
}

func (c *Command) Crop() *filters.Crop[*Command]         { return filters.NewCrop(c.registry, c) }
func (c *Command) Scale() *filters.Scale[*Command]       { return filters.NewScale(c.registry, c) }
func (c *Command) Pad() *filters.Pad[*Command]           { return filters.NewPad(c.registry, c) }
func (c *Command) Fade() *filters.Fade[*Command]         { return filters.NewFade(c.registry, c) }
func (c *Command) FPS() *filters.FPS[*Command]           { return filters.NewFPS(c.registry, c) }
func (c *Command) Eq() *filters.Eq[*Command]             { return filters.NewEq(c.registry, c) }
func (c *Command) SetPTS() *filters.SetPTS[*Command]     { return filters.NewSetPTS(c.registry, c) }
func (c *Command) DrawText() *filters.DrawText[*Command] { return filters.NewDrawText(c.registry, c) }
func (c *Command) Trim() *filters.Trim[*Command]         { return filters.NewTrim(c.registry, c) }

func (c *Command) Transpose() *filters.Transpose[*Command] {
	return filters.NewTranspose(c.registry, c)
}

// Audio filters.

func (c *Command) AFade() *filters.AFade[*Command]   { return filters.NewAFade(c.registry, c) }
func (c *Command) Volume() *filters.Volume[*Command] { return filters.NewVolume(c.registry, c) }
func (c *Command) ATempo() *filters.ATempo[*Command] { return filters.NewATempo(c.registry, c) }

func (c *Command) Equalizer() *filters.Equalizer[*Command] {
	return filters.NewEqualizer(c.registry, c)
}

func (c *Command) Loudnorm() *filters.Loudnorm[*Command] {
	return filters.NewLoudnorm(c.registry, c)
}

func (c *Command) ACompressor() *filters.ACompressor[*Command] {
	return filters.NewACompressor(c.registry, c)
}
