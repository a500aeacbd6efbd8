package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thirdcoast.systems/filtergraph/pkg/filters"
	"thirdcoast.systems/filtergraph/pkg/utils/crops"
)

func compileChains(t *testing.T, specs []FilterSpec, clipCrops crops.CropArray) (video, audio string, cmd *Command) {
	t.Helper()
	opts, err := CompileFilters(specs, clipCrops)
	require.NoError(t, err)
	cmd = NewCommand("in.mp4", "out.mkv", opts...)
	require.NoError(t, cmd.Err())
	return filters.Join(cmd.VideoChain()), filters.Join(cmd.AudioChain()), cmd
}

func TestCompileFilters(t *testing.T) {
	tests := []struct {
		name      string
		specs     []FilterSpec
		wantVideo string
		wantAudio string
	}{
		{
			name:      "brightness",
			specs:     []FilterSpec{{Type: "brightness", Params: map[string]any{"value": 0.1}}},
			wantVideo: "eq=brightness=0.1",
		},
		{
			name:  "neutral values are skipped",
			specs: []FilterSpec{{Type: "contrast", Params: map[string]any{"value": 1.0}}, {Type: "volume"}},
		},
		{
			name:      "grayscale",
			specs:     []FilterSpec{{Type: "grayscale"}},
			wantVideo: "hue=s=0",
		},
		{
			name:      "speed chains atempo",
			specs:     []FilterSpec{{Type: "speed", Params: map[string]any{"factor": 4.0}}},
			wantVideo: "setpts=expr=PTS/4.0000",
			wantAudio: "atempo=tempo=2,atempo=tempo=2",
		},
		{
			name:      "manual crop adds even dimensions",
			specs:     []FilterSpec{{Type: "crop_manual", Params: map[string]any{"x": 0.5, "y": 0.5, "width": 0.5, "height": 0.5}}},
			wantVideo: "crop=w=iw*0.500000:h=ih*0.500000:x=iw*0.250000:y=ih*0.250000,scale=w=trunc(iw/2)*2:h=trunc(ih/2)*2",
		},
		{
			name:      "transpose direction",
			specs:     []FilterSpec{{Type: "transpose", Params: map[string]any{"direction": "ccw"}}},
			wantVideo: "transpose=dir=cclock",
		},
		{
			name:      "fade in",
			specs:     []FilterSpec{{Type: "fade_in", Params: map[string]any{"duration": 1.5}}},
			wantVideo: "fade=type=in:start_time=0:duration=1.5",
		},
		{
			name:      "fade out needs a start to be placed",
			specs:     []FilterSpec{{Type: "fade_out", Params: map[string]any{"duration": 1, "start": 9, "color": "white"}}},
			wantVideo: "fade=type=out:start_time=9:duration=1:color=white",
		},
		{
			name:      "reverse touches both chains",
			specs:     []FilterSpec{{Type: "reverse"}},
			wantVideo: "reverse",
			wantAudio: "areverse",
		},
		{
			name:      "curves master points",
			specs:     []FilterSpec{{Type: "exposure", Params: map[string]any{"black": 0.1}}},
			wantVideo: "curves=master=0/0.100 1/1",
		},
		{
			name:      "text values are escaped",
			specs:     []FilterSpec{{Type: "text", Params: map[string]any{"text": "10:00, it's", "position": "top-left"}}},
			wantVideo: `drawtext=text=10\\:00\, it\\\'s:fontsize=24:fontcolor=white:x=10:y=10`,
		},
		{
			name:      "normalize defaults to loudnorm",
			specs:     []FilterSpec{{Type: "normalize"}},
			wantAudio: "loudnorm",
		},
		{
			name:      "bass boost",
			specs:     []FilterSpec{{Type: "bass", Params: map[string]any{"gain": 6}}},
			wantAudio: "equalizer=frequency=100:width_type=h:width=200:gain=6",
		},
		{
			name:      "registered filters pass through",
			specs:     []FilterSpec{{Type: "hflip"}, {Type: "highpass", Params: map[string]any{"f": 200, "poles": 1}}},
			wantVideo: "hflip",
			wantAudio: "highpass=frequency=200:poles=1",
		},
		{
			name:      "lut preset",
			specs:     []FilterSpec{{Type: "lut", Params: map[string]any{"preset": "high_contrast"}}},
			wantVideo: "hue=s=0,eq=contrast=1.6:brightness=-0.02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, audio, _ := compileChains(t, tt.specs, nil)
			assert.Equal(t, tt.wantVideo, video)
			assert.Equal(t, tt.wantAudio, audio)
		})
	}
}

func TestCompileFiltersCropByID(t *testing.T) {
	clipCrops := crops.CropArray{
		{ID: "full", X: 0.5, Y: 0.5, Width: 1, Height: 1},
		{ID: "left", X: 0.25, Y: 0.5, Width: 0.5, Height: 1},
	}

	video, _, _ := compileChains(t, []FilterSpec{{Type: "crop", Params: map[string]any{"crop_id": "left"}}}, clipCrops)
	assert.Equal(t, "crop=w=iw*0.500000:h=ih*1.000000:x=iw*0.000000:y=ih*0.000000,scale=w=trunc(iw/2)*2:h=trunc(ih/2)*2", video)

	video, _, _ = compileChains(t, []FilterSpec{{Type: "crop", Params: map[string]any{"crop_id": "full"}}}, clipCrops)
	assert.Equal(t, "scale=w=trunc(iw/2)*2:h=trunc(ih/2)*2", video, "full frame crops are skipped")
}

func TestCompileFiltersMute(t *testing.T) {
	_, _, cmd := compileChains(t, []FilterSpec{{Type: "mute"}}, nil)
	assert.Contains(t, cmd.Build(), "-an")
}

func TestCompileFiltersErrors(t *testing.T) {
	tests := []struct {
		name    string
		specs   []FilterSpec
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown type",
			specs:   []FilterSpec{{Type: "bogus"}},
			wantMsg: "filter[0] (bogus): unknown filter type: bogus",
		},
		{
			name:    "out of range",
			specs:   []FilterSpec{{Type: "grayscale"}, {Type: "brightness", Params: map[string]any{"value": 3}}},
			wantErr: filters.ErrOutOfRange,
			wantMsg: "filter[1] (brightness)",
		},
		{
			name:    "passthrough validates options",
			specs:   []FilterSpec{{Type: "hqdn3d", Params: map[string]any{"nope": 1}}},
			wantErr: filters.ErrUnknownOption,
		},
		{
			name:    "crop requires an id",
			specs:   []FilterSpec{{Type: "crop"}},
			wantMsg: "crop_id is required",
		},
		{
			name:    "speed bounds",
			specs:   []FilterSpec{{Type: "speed", Params: map[string]any{"factor": 10}}},
			wantMsg: "speed factor must be between",
		},
		{
			name:    "unknown lut",
			specs:   []FilterSpec{{Type: "lut", Params: map[string]any{"preset": "nope"}}},
			wantMsg: "unknown LUT preset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := CompileFilters(tt.specs, nil)
			require.Error(t, err)
			assert.Nil(t, opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestAtempoChain(t *testing.T) {
	assert.Equal(t, []float64{2}, atempoChain(2))
	assert.Equal(t, []float64{2, 1.5}, atempoChain(3))
	assert.Equal(t, []float64{0.5, 0.5}, atempoChain(0.25))
	assert.Equal(t, []float64{0.75}, atempoChain(0.75))
	assert.Nil(t, atempoChain(1))
	assert.Nil(t, atempoChain(0))
}

func TestExportSpecOptions(t *testing.T) {
	cmd := NewCommand("in.mp4", "out.webm", ExportSpec{Format: "webm", Quality: "max"}.Options()...)
	assert.Equal(t, []string{
		"-hide_banner", "-y",
		"-i", "in.mp4",
		"-c:v", "libvpx-vp9",
		"-crf", "18",
		"-b:v", "0", "-row-mt", "1",
		"-pix_fmt", "yuv420p",
		"-c:a", "libopus",
		"-b:a", "128k",
		"-ac", "2",
		"out.webm",
	}, cmd.Build())
}

func TestExportPresetForFormat(t *testing.T) {
	tests := []struct {
		format, quality string
		ext             string
		video           []string
		audio           bool
	}{
		{"mp4", "", ".mp4", []string{"-c:v", "libx264", "-crf", "21", "-preset", "medium", "-pix_fmt", "yuv420p"}, true},
		{"mp4", "max", ".mp4", []string{"-c:v", "libx264", "-crf", "17", "-preset", "slow", "-pix_fmt", "yuv420p"}, true},
		{"", "high", ".mp4", []string{"-c:v", "libx264", "-crf", "21", "-preset", "medium", "-pix_fmt", "yuv420p"}, true},
		{"webm", "", ".webm", []string{"-c:v", "libvpx-vp9", "-crf", "24", "-b:v", "0", "-row-mt", "1", "-pix_fmt", "yuv420p"}, true},
		{"gif", "max", ".gif", []string{"-an", "-vf", "fps=fps=15"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.quality, func(t *testing.T) {
			video, audio, ext := ExportPresetForFormat(tt.format, tt.quality)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.audio, audio != nil)
			args := NewCommand("in", "out", video...).Build()
			assert.Equal(t, tt.video, args[4:len(args)-1])
		})
	}
}

func TestExportSpecCompile(t *testing.T) {
	spec := ExportSpec{
		Format: "gif",
		Filters: []FilterSpec{
			{Type: "grayscale"},
			{Type: "hflip"},
		},
	}
	assert.Equal(t, ".gif", spec.Extension())

	cmd, err := spec.Compile(nil, "in.mp4", "", nil, WithBinary("/opt/ffmpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/opt/ffmpeg", cmd.Binary())

	args := cmd.Build()
	assert.Equal(t, "output.gif", args[len(args)-1])
	assert.Contains(t, args, "-an")
	require.Len(t, cmd.VideoChain(), 3)
	assert.Equal(t, "fps=fps=15", cmd.VideoChain()[0].String())
	assert.Equal(t, "hflip", cmd.VideoChain()[2].String())

	_, err = ExportSpec{Filters: []FilterSpec{{Type: "nope"}}}.Compile(nil, "in.mp4", "out.mp4", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter[0] (nope)")
}
