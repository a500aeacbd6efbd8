// Package ffmpeg provides a composable API for building and executing ffmpeg
// commands. A Command is the host for filter builders: it owns the ordered
// list of filter descriptors and serializes them into -vf, -af or
// -filter_complex arguments.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"thirdcoast.systems/filtergraph/pkg/filters"
)

// DefaultBinary is the ffmpeg executable used when no WithBinary option is given.
const DefaultBinary = "ffmpeg"

// ErrGraphWithChains is recorded when a -filter_complex graph and simple
// -vf/-af filters are used on the same command.
var ErrGraphWithChains = errors.New("ffmpeg: filter graph cannot be combined with simple filter chains")

// Command represents an ffmpeg command being built.
type Command struct {
	binary    string
	registry  *filters.Registry
	input     string
	output    string
	preInput  []string // args before -i (like -ss for input seeking)
	postInput []string // args after -i
	filters   []filters.Descriptor
	graph     *filters.Graph
	err       error
}

// Option modifies a Command. Options are composable and order-independent
// (ffmpeg will receive args in correct order regardless of option order).
type Option interface {
	Apply(cmd *Command)
}

// OptionFunc is a function that implements Option.
type OptionFunc func(cmd *Command)

// Apply implements Option.
func (f OptionFunc) Apply(cmd *Command) { f(cmd) }

// NewCommand creates a command with input/output and applies options.
func NewCommand(input, output string, opts ...Option) *Command {
	cmd := &Command{
		binary:   DefaultBinary,
		registry: filters.Default(),
		input:    input,
		output:   output,
	}
	for _, opt := range opts {
		opt.Apply(cmd)
	}
	return cmd
}

// With applies further options to an existing command.
func (c *Command) With(opts ...Option) *Command {
	for _, opt := range opts {
		opt.Apply(c)
	}
	return c
}

// AddFilter appends a built filter to the command's filter list. Filters
// added after a FilterGraph are dropped and recorded as ErrGraphWithChains.
func (c *Command) AddFilter(d filters.Descriptor) {
	if c.graph != nil {
		c.addErr(fmt.Errorf("%w: %s", ErrGraphWithChains, d.Name()))
		return
	}
	c.filters = append(c.filters, d)
}

// Filters returns the command's filters in the order they were added.
func (c *Command) Filters() []filters.Descriptor {
	return append([]filters.Descriptor(nil), c.filters...)
}

// VideoChain returns the video filters in order.
func (c *Command) VideoChain() []filters.Descriptor {
	return c.chain(filters.MediaVideo)
}

// AudioChain returns the audio filters in order.
func (c *Command) AudioChain() []filters.Descriptor {
	return c.chain(filters.MediaAudio)
}

func (c *Command) chain(media filters.Media) []filters.Descriptor {
	var out []filters.Descriptor
	for _, d := range c.filters {
		if d.Media() == media {
			out = append(out, d)
		}
	}
	return out
}

// Registry returns the filter registry builders are resolved against.
func (c *Command) Registry() *filters.Registry {
	return c.registry
}

// Binary returns the ffmpeg executable the command runs.
func (c *Command) Binary() string {
	return c.binary
}

// Err returns the errors recorded while applying options.
func (c *Command) Err() error {
	return c.err
}

func (c *Command) addErr(err error) {
	if err != nil {
		c.err = errors.Join(c.err, err)
	}
}

// Build returns the complete ffmpeg argument list.
func (c *Command) Build() []string {
	args := []string{"-hide_banner", "-y"}

	// Pre-input args (seeking)
	args = append(args, c.preInput...)

	// Input
	args = append(args, "-i", c.input)

	// Post-input args
	args = append(args, c.postInput...)

	if c.graph != nil && !c.graph.Empty() {
		args = append(args, "-filter_complex", c.graph.String())
	}

	if video := c.VideoChain(); len(video) > 0 {
		args = append(args, "-vf", filters.Join(video))
	}

	if audio := c.AudioChain(); len(audio) > 0 {
		args = append(args, "-af", filters.Join(audio))
	}

	// Auto-apply faststart for MP4/M4A outputs
	ext := strings.ToLower(filepath.Ext(c.output))
	if ext == ".mp4" || ext == ".m4a" || ext == ".mov" {
		args = append(args, "-movflags", "+faststart")
	}

	// Output
	args = append(args, c.output)

	return args
}

// String returns the command line for display.
func (c *Command) String() string {
	return c.binary + " " + strings.Join(c.Build(), " ")
}

// Run executes the ffmpeg command.
func (c *Command) Run(ctx context.Context) error {
	if c.err != nil {
		return c.err
	}
	return run(ctx, c.binary, c.Build(), nil)
}

// RunCapture executes the ffmpeg command and returns both stderr logs and any error.
func (c *Command) RunCapture(ctx context.Context) RunResult {
	if c.err != nil {
		return RunResult{Err: c.err}
	}
	return runCapture(ctx, c.binary, c.Build())
}

// RunWithProgress executes with progress reporting.
func (c *Command) RunWithProgress(ctx context.Context, progress chan<- Progress) error {
	if c.err != nil {
		return c.err
	}
	return run(ctx, c.binary, c.progressArgs(), progress)
}

// Start starts the command and returns a Process handle for lifecycle management.
// The caller is responsible for calling Wait() or Kill() to clean up.
func (c *Command) Start(ctx context.Context) (*Process, error) {
	if c.err != nil {
		return nil, c.err
	}
	return StartBinary(ctx, c.binary, c.Build(), nil)
}

// StartWithProgress starts the command with progress reporting.
// The caller is responsible for calling Wait() or Kill() to clean up.
func (c *Command) StartWithProgress(ctx context.Context, progress chan<- Progress) (*Process, error) {
	if c.err != nil {
		return nil, c.err
	}
	return StartBinary(ctx, c.binary, c.progressArgs(), progress)
}

// progressArgs inserts -progress after -hide_banner -y.
func (c *Command) progressArgs() []string {
	args := c.Build()
	progressArgs := []string{args[0], args[1], "-progress", "pipe:1", "-nostats"}
	return append(progressArgs, args[2:]...)
}

// Run executes the ffmpeg command with the given options.
func Run(ctx context.Context, input, output string, opts ...Option) error {
	return NewCommand(input, output, opts...).Run(ctx)
}

// RunCapture executes the ffmpeg command and returns both the stderr logs and any error.
func RunCapture(ctx context.Context, input, output string, opts ...Option) RunResult {
	return NewCommand(input, output, opts...).RunCapture(ctx)
}

// RunWithProgress executes and reports progress.
func RunWithProgress(ctx context.Context, input, output string, progress chan<- Progress, opts ...Option) error {
	return NewCommand(input, output, opts...).RunWithProgress(ctx, progress)
}

// WithRegistry resolves filter builders against reg instead of the default catalog.
func WithRegistry(reg *filters.Registry) Option {
	return OptionFunc(func(cmd *Command) {
		if reg != nil {
			cmd.registry = reg
		}
	})
}

// WithBinary runs the given ffmpeg executable.
func WithBinary(path string) Option {
	return OptionFunc(func(cmd *Command) {
		if path != "" {
			cmd.binary = path
		}
	})
}

// WithFilter appends an already built descriptor.
func WithFilter(d filters.Descriptor) Option {
	return OptionFunc(func(cmd *Command) {
		cmd.AddFilter(d)
	})
}

// NamedFilter builds the named filter from opts against the command's registry.
// Validation errors are reported by Err and by the Run methods.
func NamedFilter(name string, opts map[string]any) Option {
	return OptionFunc(func(cmd *Command) {
		_, err := cmd.Filter(name).SetAll(opts).Build()
		cmd.addErr(err)
	})
}

// RawFilter adds pre-serialized video filter text to the chain.
func RawFilter(f string) Option {
	return WithFilter(filters.RawDescriptor(filters.MediaVideo, f))
}

// RawAudioFilter adds pre-serialized audio filter text to the chain.
func RawAudioFilter(f string) Option {
	return WithFilter(filters.RawDescriptor(filters.MediaAudio, f))
}

// FilterGraph sets a -filter_complex graph. It cannot be combined with the
// simple -vf/-af chains.
func FilterGraph(g *filters.Graph) Option {
	return OptionFunc(func(cmd *Command) {
		if len(cmd.filters) > 0 {
			cmd.addErr(ErrGraphWithChains)
			return
		}
		cmd.graph = g
	})
}
