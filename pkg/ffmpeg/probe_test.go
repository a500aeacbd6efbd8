package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeJSON = `{
  "streams": [
    {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080,
     "r_frame_rate": "30000/1001", "pix_fmt": "yuv420p"},
    {"index": 1, "codec_type": "audio", "codec_name": "aac", "sample_rate": "48000", "channels": 2},
    {"index": 2, "codec_type": "audio", "codec_name": "opus", "sample_rate": "48000", "channels": 6},
    {"index": 3, "codec_type": "subtitle", "codec_name": "mov_text"}
  ],
  "format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "62.500000",
             "size": "15728640", "bit_rate": "2013265"}
}`

func TestParseProbe(t *testing.T) {
	res, err := ParseProbe([]byte(probeJSON))
	require.NoError(t, err)

	assert.Equal(t, 1920, res.Width)
	assert.Equal(t, 1080, res.Height)
	assert.InDelta(t, 29.97, res.FPS, 0.01)
	assert.Equal(t, "h264", res.VideoCodec)
	assert.Equal(t, "yuv420p", res.PixelFormat)
	assert.Equal(t, "aac", res.AudioCodec, "first audio stream wins")
	assert.Equal(t, 2, res.AudioChannels)
	assert.Equal(t, 48000, res.AudioSampleRate)
	assert.Equal(t, 1, res.VideoStreams)
	assert.Equal(t, 2, res.AudioStreams)
	assert.Equal(t, 62.5, res.Duration)
	assert.Equal(t, int64(15728640), res.Size)
	assert.Equal(t, int64(2013265), res.Bitrate)
	assert.Contains(t, res.RawJSON, "streams")

	assert.Equal(t, "mov,mp4,m4a,3gp,3g2,mj2, 1m2.5s, 16 MB, video h264 1920x1080 @ 29.97 fps, audio aac 2 ch 48,000 Hz",
		res.Summary())
}

func TestParseProbeErrors(t *testing.T) {
	_, err := ParseProbe([]byte("not json"))
	assert.ErrorContains(t, err, "ffprobe: decode output")

	res, err := ParseProbe([]byte(`{"format": {"format_name": "wav", "duration": "N/A"}}`))
	require.NoError(t, err)
	assert.Zero(t, res.Duration)
	assert.Equal(t, "wav, 0s, 0 B", res.Summary())
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"30000/1001", 29.97},
		{"25", 25},
		{"0/0", 0},
		{"", 0},
		{"x/1", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, parseRate(tt.in), 0.01, tt.in)
	}
}
