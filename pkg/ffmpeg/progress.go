package ffmpeg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Progress is one block of ffmpeg "-progress" output.
type Progress struct {
	Frame     int64
	FPS       float64
	Bitrate   string // e.g. "1234.5kbits/s"
	TotalSize int64  // bytes written so far
	OutTimeUS int64
	Speed     string // e.g. "2.5x"
	Progress  string // "continue" or "end"
}

// OutTime is the output timestamp reached so far.
func (p Progress) OutTime() time.Duration {
	return time.Duration(p.OutTimeUS) * time.Microsecond
}

// String renders the progress for terminal display.
func (p Progress) String() string {
	return fmt.Sprintf("frame=%d time=%s size=%s speed=%s",
		p.Frame, p.OutTime().Truncate(time.Millisecond), humanize.IBytes(uint64(max(p.TotalSize, 0))), p.Speed)
}

// ProgressParser folds "key=value" lines into Progress blocks. ffmpeg ends
// every block with a "progress=" line.
type ProgressParser struct {
	cur Progress
}

func NewProgressParser() *ProgressParser { return &ProgressParser{} }

// ParseLine consumes one line and reports whether it completed a block.
// Unknown keys and malformed numbers are ignored.
func (p *ProgressParser) ParseLine(line string) bool {
	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return false
	}
	switch key {
	case "frame":
		p.cur.Frame = parseInt(value)
	case "fps":
		p.cur.FPS, _ = strconv.ParseFloat(value, 64)
	case "bitrate":
		p.cur.Bitrate = value
	case "total_size":
		p.cur.TotalSize = parseInt(value)
	case "out_time_us":
		p.cur.OutTimeUS = parseInt(value)
	case "out_time_ms":
		// Microseconds despite the name; older builds only send this key.
		if p.cur.OutTimeUS == 0 {
			p.cur.OutTimeUS = parseInt(value)
		}
	case "speed":
		p.cur.Speed = strings.TrimSpace(value)
	case "progress":
		p.cur.Progress = value
		return true
	}
	return false
}

// Current returns the latest state.
func (p *ProgressParser) Current() Progress { return p.cur }

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

// scanProgress sends every completed block read from r, stopping after the
// "progress=end" block.
func scanProgress(r io.Reader, ch chan<- Progress) {
	parser := NewProgressParser()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if !parser.ParseLine(sc.Text()) {
			continue
		}
		cur := parser.Current()
		ch <- cur
		if cur.Progress == "end" {
			return
		}
	}
}
