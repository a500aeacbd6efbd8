package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeChain(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const chainYAML = `
input: in.mp4
output: out.mp4
format: mp4
filters:
  - type: scale
    params: {width: 1280}
  - type: grayscale
  - type: volume
    params: {gain: 0.5}
`

func TestCatalogList(t *testing.T) {
	out, err := execute(t, "", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "drawtext")
	assert.Contains(t, out, "loudnorm")

	out, err = execute(t, "", "catalog", "--media", "audio")
	require.NoError(t, err)
	assert.Contains(t, out, "loudnorm")
	assert.NotContains(t, out, "drawtext")
}

func TestCatalogShow(t *testing.T) {
	out, err := execute(t, "", "catalog", "crop")
	require.NoError(t, err)
	assert.Contains(t, out, "Crop (video)")
	assert.Contains(t, out, "out_w")

	out, err = execute(t, "", "catalog", "volume", "--json")
	require.NoError(t, err)
	var def map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &def))
	assert.Equal(t, "volume", def["name"])

	_, err = execute(t, "", "catalog", "sparkle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter")
}

func TestCompile(t *testing.T) {
	path := writeChain(t, chainYAML)

	out, err := execute(t, "", "compile", "-f", path, "--ffmpeg", "/opt/bin/ffmpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "/opt/bin/ffmpeg -hide_banner -y -i in.mp4"), out)
	assert.Contains(t, out, "-vf scale=w=1280:h=-2,hue=s=0")
	assert.Contains(t, out, "-af volume=volume=0.5")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "out.mp4"))
}

func TestCompileOverridesAndStdin(t *testing.T) {
	out, err := execute(t, chainYAML, "compile", "-f", "-", "-i", "other.mov", "-o", "clip.mp4", "--json")
	require.NoError(t, err)

	var res struct {
		Args         []string
		VideoFilters []struct{ Filter string } `json:"video_filters"`
		AudioFilters []struct{ Filter string } `json:"audio_filters"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Contains(t, res.Args, "other.mov")
	assert.Equal(t, "clip.mp4", res.Args[len(res.Args)-1])
	require.Len(t, res.VideoFilters, 2)
	assert.Equal(t, "scale", res.VideoFilters[0].Filter)
	require.Len(t, res.AudioFilters, 1)
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		args []string
		want string
	}{
		{"unknown key", "input: a.mp4\nfilterz: []\n", nil, "field filterz not found"},
		{"bad format", "input: a.mp4\nformat: avi\n", nil, "invalid chain file"},
		{"no input", "format: mp4\n", nil, "no input"},
		{"unknown filter", "input: a.mp4\nfilters:\n  - type: sparkle\n", nil, "unknown filter type: sparkle"},
		{"empty", "", nil, "chain file is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeChain(t, tt.body)
			_, err := execute(t, "", append([]string{"compile", "-f", path}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := execute(t, "", "compile")
	require.Error(t, err, "the file flag is required")
}

func TestCompileNamedOutput(t *testing.T) {
	path := writeChain(t, "name: Golden Hour\ninput: in.mp4\nformat: webm\nfilters:\n  - type: lut\n    params: {preset: golden_hour}\n")

	out, err := execute(t, "", "compile", "-f", path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Golden-Hour.webm"), out)
	assert.Contains(t, out, "colorbalance=")
}

func TestParseChainFileCrops(t *testing.T) {
	cf, err := ParseChainFile([]byte(`
input: in.mp4
filters:
  - type: crop
    params: {crop_id: square}
crops:
  - id: square
    x: 0.5
    y: 0.5
    width: 0.5
    height: 0.5
`))
	require.NoError(t, err)
	require.Len(t, cf.Crops, 1)
	assert.Equal(t, "square", cf.Crops[0].ID)
	assert.Equal(t, "crop", cf.Export.Filters[0].Type)
}

func TestSizeCrops(t *testing.T) {
	cf, err := ParseChainFile([]byte(`
input: in.mp4
crops:
  - id: vertical
    aspect_ratio: "9:16"
  - id: fixed
    x: 0.5
    y: 0.5
    width: 0.5
    height: 0.5
`))
	require.NoError(t, err)
	require.True(t, cf.Crops.Unsized())

	cf.Crops.Size(1920, 1080)
	assert.False(t, cf.Crops.Unsized())
	assert.InDelta(t, 0.316, cf.Crops[0].Width, 0.001)
	assert.Equal(t, 1.0, cf.Crops[0].Height)
	assert.Equal(t, 0.5, cf.Crops[1].Width)
}
