package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// stderrTail is the number of trailing stderr lines quoted in Error.
const stderrTail = 3

// Process is a started ffmpeg invocation.
type Process struct {
	cmd    *exec.Cmd
	done   chan struct{}
	err    error
	stderr bytes.Buffer
}

// PID returns the process ID.
func (p *Process) PID() int { return p.cmd.Process.Pid }

// Done is closed once the process has exited and been reaped.
func (p *Process) Done() <-chan struct{} { return p.done }

// Wait blocks until the process exits. A non-zero exit is an *Error.
func (p *Process) Wait() error {
	<-p.done
	return p.err
}

// Kill sends SIGKILL.
func (p *Process) Kill() error { return p.cmd.Process.Kill() }

// Signal delivers sig to the process, e.g. os.Interrupt for a clean stop.
func (p *Process) Signal(sig os.Signal) error { return p.cmd.Process.Signal(sig) }

// Stderr returns what ffmpeg logged. It is complete once Done is closed.
func (p *Process) Stderr() string { return p.stderr.String() }

// Start runs the default ffmpeg binary with args.
func Start(ctx context.Context, args []string, progress chan<- Progress) (*Process, error) {
	return StartBinary(ctx, DefaultBinary, args, progress)
}

// StartBinary starts binary with args. When progress is non-nil, args are
// expected to contain "-progress pipe:1"; updates parsed from stdout are sent
// on progress, which is closed after the process exits. The caller must Wait
// or Kill.
func StartBinary(ctx context.Context, binary string, args []string, progress chan<- Progress) (*Process, error) {
	p := &Process{cmd: exec.CommandContext(ctx, binary, args...), done: make(chan struct{})}
	p.cmd.Stderr = &p.stderr

	var stdout io.Reader
	if progress != nil {
		pipe, err := p.cmd.StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("ffmpeg: stdout pipe: %w", err)
		}
		stdout = pipe
	}
	if err := p.cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg: start %s: %w", binary, err)
	}
	slog.DebugContext(ctx, "ffmpeg started", "binary", binary, "pid", p.PID(), "progress", progress != nil)

	go func() {
		defer close(p.done)
		if progress != nil {
			defer close(progress)
			scanProgress(stdout, progress)
			// Drain so ffmpeg never blocks on a full pipe after "progress=end".
			_, _ = io.Copy(io.Discard, stdout)
		}
		if err := p.cmd.Wait(); err != nil {
			p.err = &Error{Binary: binary, Args: args, Stderr: p.stderr.String(), Err: err}
		}
	}()
	return p, nil
}

func run(ctx context.Context, binary string, args []string, progress chan<- Progress) error {
	proc, err := StartBinary(ctx, binary, args, progress)
	if err != nil {
		return err
	}
	return proc.Wait()
}

// RunResult is the outcome of a run whose log output the caller keeps.
type RunResult struct {
	Logs string // ffmpeg's stderr, on success and failure
	Err  error
}

func runCapture(ctx context.Context, binary string, args []string) RunResult {
	proc, err := StartBinary(ctx, binary, args, nil)
	if err != nil {
		return RunResult{Err: err}
	}
	err = proc.Wait()
	return RunResult{Logs: proc.Stderr(), Err: err}
}

// Error is a failed ffmpeg run.
type Error struct {
	Binary string
	Args   []string
	Stderr string
	Err    error
}

// Error quotes the exit status and the last lines ffmpeg logged, which is
// where it reports the cause.
func (e *Error) Error() string {
	tail := strings.TrimSpace(e.Stderr)
	if tail == "" {
		return fmt.Sprintf("ffmpeg: %v", e.Err)
	}
	lines := strings.Split(tail, "\n")
	if len(lines) > stderrTail {
		lines = lines[len(lines)-stderrTail:]
	}
	return fmt.Sprintf("ffmpeg: %v: %s", e.Err, strings.Join(lines, "\n"))
}

func (e *Error) Unwrap() error { return e.Err }

// Command returns the command line that failed.
func (e *Error) Command() string {
	binary := e.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	return binary + " " + strings.Join(e.Args, " ")
}
