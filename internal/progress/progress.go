// Package progress reports byte-level progress of long transfers.
package progress

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"
)

// Func receives progress updates. total is -1 when the size is unknown.
type Func func(current, total int64, label string)

// Nop discards progress updates.
func Nop(int64, int64, string) {}

// Reader counts the bytes read through it and reports them to a Func.
type Reader struct {
	r      io.Reader
	total  int64
	label  string
	report Func
	read   atomic.Int64
}

// NewReader wraps r. A nil report is treated as Nop.
func NewReader(r io.Reader, total int64, label string, report Func) *Reader {
	if report == nil {
		report = Nop
	}
	return &Reader{r: r, total: total, label: label, report: report}
}

func (p *Reader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.report(p.read.Add(int64(n)), p.total, p.label)
	}
	return n, err
}

// N returns the number of bytes read so far.
func (p *Reader) N() int64 { return p.read.Load() }

// DefaultLogInterval is the LogSink interval used when none is given.
const DefaultLogInterval = 2 * time.Second

// LogSink returns a Func that logs progress at info level, at most once per
// interval. The final update of a known-size transfer is always logged.
func LogSink(logger *log.Logger, interval time.Duration) Func {
	if logger == nil {
		logger = log.Default()
	}
	if interval <= 0 {
		interval = DefaultLogInterval
	}
	s := rate.Sometimes{Interval: interval}
	return func(current, total int64, label string) {
		if total > 0 && current >= total {
			logProgress(logger, current, total, label)
			return
		}
		s.Do(func() { logProgress(logger, current, total, label) })
	}
}

func logProgress(logger *log.Logger, current, total int64, label string) {
	if total <= 0 {
		logger.Info("Downloading", "file", label, "read", humanize.Bytes(uint64(current)))
		return
	}
	pct := float64(current) / float64(total) * 100
	logger.Info("Downloading",
		"file", label,
		"read", humanize.Bytes(uint64(current)),
		"total", humanize.Bytes(uint64(total)),
		"percent", humanize.FtoaWithDigits(pct, 1))
}
