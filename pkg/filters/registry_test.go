package filters

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Definition{
		Name:  "blur",
		Media: MediaVideo,
		Params: []Param{
			{Key: "radius", Aliases: []string{"r"}, Type: ParamInt, Min: 1, Max: 10, Bounded: true},
		},
	}))

	def, ok := reg.Lookup("blur")
	require.True(t, ok)
	assert.Equal(t, "Blur", def.Label())

	p, ok := def.Param("r")
	require.True(t, ok)
	assert.Equal(t, "radius", p.Key)

	_, ok = reg.Lookup("sharpen")
	assert.False(t, ok)
	assert.Equal(t, []string{"blur"}, reg.Names())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryReplacesDuplicates(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{Name: "x", Media: MediaVideo, Doc: "first"})
	reg.MustRegister(Definition{Name: "x", Media: MediaAudio, Doc: "second"})

	def, ok := reg.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "second", def.Doc)
	assert.Equal(t, MediaAudio, def.Media)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryCopiesDefinitions(t *testing.T) {
	params := []Param{{Key: "a", Type: ParamInt}}
	reg := NewRegistry()
	reg.MustRegister(Definition{Name: "x", Media: MediaVideo, Params: params})

	params[0].Key = "mutated"
	def, _ := reg.Lookup("x")
	assert.Equal(t, "a", def.Params[0].Key)

	def.Params[0].Key = "mutated"
	def.Params[0].Type = ParamString
	for _, d := range reg.Definitions() {
		d.Params = nil
	}

	again, _ := reg.Lookup("x")
	assert.Equal(t, "a", again.Params[0].Key)
	assert.Equal(t, ParamInt, again.Params[0].Type)

	_, err := New(reg, nopSink{}, "x").Set("a", "7").Descriptor()
	require.NoError(t, err, "builds still see the registered schema")
}

func TestRegistryRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
	}{
		{"empty name", Definition{Media: MediaVideo}},
		{"bad media", Definition{Name: "x", Media: "subtitle"}},
		{"empty key", Definition{Name: "x", Media: MediaVideo, Params: []Param{{Type: ParamInt}}}},
		{"choice without choices", Definition{Name: "x", Media: MediaVideo, Params: []Param{{Key: "m", Type: ParamChoice}}}},
		{"min above max", Definition{Name: "x", Media: MediaVideo, Params: []Param{{Key: "a", Type: ParamInt, Min: 5, Max: 1, Bounded: true}}}},
		{"alias clash", Definition{Name: "x", Media: MediaVideo, Params: []Param{
			{Key: "a", Type: ParamInt},
			{Key: "b", Aliases: []string{"a"}, Type: ParamInt},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.Register(tt.def)
			assert.ErrorIs(t, err, ErrInvalidDef)
			assert.Zero(t, reg.Len())
		})
	}

	assert.Panics(t, func() { NewRegistry().MustRegister(Definition{}) })
}

func TestRegistryCustomFilterBuilds(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(Definition{
		Name:  "gblur",
		Media: MediaVideo,
		Params: []Param{
			{Key: "sigma", Aliases: []string{"s"}, Type: ParamFloat, Min: 0, Max: 1024, Bounded: true},
			{Key: "steps", Type: ParamInt, Min: 1, Max: 6, Bounded: true},
		},
	})

	host := &recorder{}
	_, err := New(reg, host, "gblur").Set("s", 2.5).SetInt("steps", 2).Build()
	require.NoError(t, err)
	assert.Equal(t, "gblur=sigma=2.5:steps=2", host.got[0].String())

	_, err = New(reg, host, "scale").Build()
	assert.ErrorIs(t, err, ErrUnknownFilter, "custom registries do not fall back to the catalog")
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.MustRegister(Definition{Name: fmt.Sprintf("f%d", i), Media: MediaVideo})
		}()
		go func() {
			defer wg.Done()
			_ = reg.Names()
			_, _ = reg.Lookup("f0")
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, reg.Len())
}

func TestDefaultCatalog(t *testing.T) {
	reg := Default()
	assert.Same(t, reg, Default())

	for _, name := range []string{
		"crop", "scale", "pad", "fade", "fps", "eq", "hue", "transpose", "rotate",
		"hflip", "vflip", "setpts", "trim", "drawtext", "unsharp", "hqdn3d",
		"vignette", "colorbalance", "colortemperature", "curves", "colorchannelmixer",
		"tile", "format", "reverse",
		"afade", "volume", "atempo", "equalizer", "highpass", "lowpass", "acompressor",
		"agate", "loudnorm", "dynaudnorm", "aresample", "atrim", "asetpts", "areverse",
	} {
		def, ok := reg.Lookup(name)
		if assert.True(t, ok, name) {
			assert.NoError(t, def.validate(), name)
		}
	}

	defs := reg.Definitions()
	require.Len(t, defs, reg.Len())
	for i := 1; i < len(defs); i++ {
		assert.Less(t, defs[i-1].Name, defs[i].Name)
	}
}

func TestCatalogDefaultsCoerce(t *testing.T) {
	for _, def := range Default().Definitions() {
		for _, p := range def.Params {
			if p.DefaultVal == "" {
				continue
			}
			_, err := p.Coerce(String(p.DefaultVal))
			assert.NoError(t, err, "%s.%s default %q", def.Name, p.Key, p.DefaultVal)
		}
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Start Time", Label("start_time"))
	assert.Equal(t, "Colortemperature", Label("colortemperature"))
}
