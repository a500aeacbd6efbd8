package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"thirdcoast.systems/filtergraph/pkg/ffmpeg"
	"thirdcoast.systems/filtergraph/pkg/utils/crops"
	"thirdcoast.systems/filtergraph/pkg/utils/filename"
)

// ChainFile is the YAML recipe consumed by compile and run.
//
//	name: Film Noir
//	input: in.mp4
//	output: out.mp4
//	format: mp4
//	filters:
//	  - type: scale
//	    params: {w: 1280, h: -2}
//	  - type: normalize
type ChainFile struct {
	Name   string            `yaml:"name,omitempty"`
	Input  string            `yaml:"input,omitempty"`
	Output string            `yaml:"output,omitempty"`
	Export ffmpeg.ExportSpec `yaml:",inline"`
	Crops  crops.CropArray   `yaml:"crops,omitempty"`
}

var validate = validator.New()

// LoadChainFile reads a chain file from path, or stdin when path is "-".
func LoadChainFile(path string, stdin io.Reader) (*ChainFile, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read chain file: %w", err)
	}
	return ParseChainFile(data)
}

// ParseChainFile decodes and validates a chain file. Unknown keys are rejected.
func ParseChainFile(data []byte) (*ChainFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cf ChainFile
	if err := dec.Decode(&cf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("chain file is empty")
		}
		return nil, fmt.Errorf("parse chain file: %w", err)
	}
	if err := validate.Struct(&cf); err != nil {
		return nil, fmt.Errorf("invalid chain file: %w", err)
	}
	return &cf, nil
}

// resolve applies command line overrides for input and output. Without an
// output the chain name, if any, becomes the file name.
func (cf *ChainFile) resolve(input, output string) (string, string, error) {
	if input == "" {
		input = cf.Input
	}
	if output == "" {
		output = cf.Output
	}
	if output == "" && cf.Name != "" {
		output = filename.WithExt(cf.Name, cf.Export.Extension(), "output")
	}
	if input == "" {
		return "", "", errors.New("no input: set input in the chain file or pass -i")
	}
	return input, output, nil
}

// command compiles the chain into an ffmpeg command. Aspect-ratio-only crops
// are sized by probing the input first.
func (a *app) command(ctx context.Context, cf *ChainFile, input, output string, opts ...ffmpeg.Option) (*ffmpeg.Command, error) {
	input, output, err := cf.resolve(input, output)
	if err != nil {
		return nil, err
	}
	if cf.Crops.Unsized() {
		res, err := ffmpeg.ProbeWith(ctx, a.conf.FFmpeg.ProbeBinary, input)
		if err != nil {
			return nil, fmt.Errorf("probe input for crop sizing: %w", err)
		}
		if res.Width == 0 || res.Height == 0 {
			return nil, fmt.Errorf("probe input for crop sizing: %s has no video stream", input)
		}
		cf.Crops.Size(res.Width, res.Height)
	}
	opts = append([]ffmpeg.Option{ffmpeg.WithBinary(a.conf.FFmpeg.Binary)}, opts...)
	return cf.Export.Compile(a.registry, input, output, cf.Crops, opts...)
}
