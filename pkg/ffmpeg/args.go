package ffmpeg

import (
	"strconv"
	"time"
)

// inputArgs go before -i and apply to the input.
func inputArgs(args ...string) Option {
	return OptionFunc(func(cmd *Command) { cmd.preInput = append(cmd.preInput, args...) })
}

// outputArgs go after -i and before the filter chains.
func outputArgs(args ...string) Option {
	return OptionFunc(func(cmd *Command) { cmd.postInput = append(cmd.postInput, args...) })
}

// Seek starts reading the input at start (input seeking).
func Seek(start time.Duration) Option { return inputArgs("-ss", formatDuration(start)) }

// Duration limits the output to d.
func Duration(d time.Duration) Option { return outputArgs("-t", formatDuration(d)) }

// SeekTo seeks to start and stops at end. An end before start only seeks.
func SeekTo(start, end time.Duration) Option {
	if end <= start {
		return Seek(start)
	}
	return OptionFunc(func(cmd *Command) {
		Seek(start).Apply(cmd)
		Duration(end - start).Apply(cmd)
	})
}

func VideoCodec(codec string) Option    { return outputArgs("-c:v", codec) }
func CRF(value int) Option              { return outputArgs("-crf", strconv.Itoa(value)) }
func Preset(name string) Option         { return outputArgs("-preset", name) }
func PixelFormat(pf string) Option      { return outputArgs("-pix_fmt", pf) }
func AudioCodec(codec string) Option    { return outputArgs("-c:a", codec) }
func AudioBitrate(rate string) Option   { return outputArgs("-b:a", rate) }
func AudioChannels(n int) Option        { return outputArgs("-ac", strconv.Itoa(n)) }
func AudioSampleRate(hz int) Option     { return outputArgs("-ar", strconv.Itoa(hz)) }
func Frames(n int) Option               { return outputArgs("-frames:v", strconv.Itoa(n)) }
func Quality(q int) Option              { return outputArgs("-q:v", strconv.Itoa(q)) }
func MapStream(spec string) Option      { return outputArgs("-map", spec) }
func Metadata(key, value string) Option { return outputArgs("-metadata", key+"="+value) }

// ExtraArgs passes output arguments the typed options do not cover.
func ExtraArgs(args ...string) Option { return outputArgs(args...) }

// LogLevel sets -loglevel ahead of every other input argument.
func LogLevel(level string) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.preInput = append([]string{"-loglevel", level}, cmd.preInput...)
	})
}

var (
	CopyVideo = outputArgs("-c:v", "copy")
	CopyAudio = outputArgs("-c:a", "copy")
	CopyAll   = outputArgs("-c", "copy")
	NoAudio   = outputArgs("-an")
	MapAll    = outputArgs("-map", "0")
)

// formatDuration renders d as seconds with millisecond precision.
func formatDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
