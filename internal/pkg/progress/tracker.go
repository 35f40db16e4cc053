package progress

import (
	"fmt"
	"io"
	"oss-upload-helper/internal/pkg/format"
	"strings"
	"sync"
	"time"

	"github.com/gioco-play/easy-i18n/i18n"
)

// displayInterval throttles progress redraws
const displayInterval = 500 * time.Millisecond

// Tracker tracks upload progress and displays real-time information.
// OSS reports absolute consumed bytes, so updates set rather than add.
type Tracker struct {
	mu          sync.Mutex
	out         io.Writer
	totalBytes  int64
	transferred int64
	startTime   time.Time
	lastUpdate  time.Time
	lastBytes   int64
	done        bool
	now         func() time.Time
}

// NewTracker creates a new progress tracker writing to out
func NewTracker(out io.Writer, totalBytes int64) *Tracker {
	return &Tracker{
		out:        out,
		totalBytes: totalBytes,
		now:        time.Now,
	}
}

// SetTotal sets the expected size once the transfer starts
func (pt *Tracker) SetTotal(total int64) {
	pt.mu.Lock()
	pt.totalBytes = total
	pt.mu.Unlock()
}

// Set records the number of bytes consumed so far and redraws the progress line
func (pt *Tracker) Set(consumed int64) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	now := pt.now()
	if pt.startTime.IsZero() {
		pt.startTime = now
		pt.lastUpdate = now
	}
	pt.transferred = consumed
	pt.display(now)
}

// Transferred returns the bytes consumed so far
func (pt *Tracker) Transferred() int64 {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.transferred
}

// Complete prints final statistics
func (pt *Tracker) Complete() {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if pt.done {
		return
	}
	pt.done = true

	// Clear the progress line
	fmt.Fprint(pt.out, "\r"+strings.Repeat(" ", 100)+"\r\n")
	i18n.Fprintf(pt.out, "[oss-upload-helper] Upload completed!\n")
	i18n.Fprintf(pt.out, "  Total uploaded: %s\n", format.Bytes(pt.transferred))
	if pt.startTime.IsZero() {
		return
	}
	duration := pt.now().Sub(pt.startTime)
	i18n.Fprintf(pt.out, "  Duration: %s\n", format.Duration(duration))
	if duration > 0 {
		avgSpeed := float64(pt.transferred) / duration.Seconds()
		i18n.Fprintf(pt.out, "  Average speed: %s/s\n", format.Bytes(int64(avgSpeed)))
	}
}

// Fail ends the progress line without statistics
func (pt *Tracker) Fail() {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if pt.done {
		return
	}
	pt.done = true
	fmt.Fprint(pt.out, "\n")
}

// display must be called with mu held
func (pt *Tracker) display(now time.Time) {
	if now.Sub(pt.lastUpdate) < displayInterval {
		return
	}

	duration := now.Sub(pt.lastUpdate)
	speed := float64(pt.transferred-pt.lastBytes) / duration.Seconds()

	var progressLine string
	if pt.totalBytes > 0 {
		percentage := float64(pt.transferred) * 100.0 / float64(pt.totalBytes)
		progressLine = fmt.Sprintf("\rProgress: %s / %s (%.1f%%) - %s/s - Duration: %s",
			format.Bytes(pt.transferred),
			format.Bytes(pt.totalBytes),
			percentage,
			format.Bytes(int64(speed)),
			format.Duration(now.Sub(pt.startTime)),
		)
	} else {
		// Unknown total size
		progressLine = fmt.Sprintf("\rProgress: %s - %s/s - Duration: %s",
			format.Bytes(pt.transferred),
			format.Bytes(int64(speed)),
			format.Duration(now.Sub(pt.startTime)),
		)
	}
	fmt.Fprint(pt.out, progressLine)

	pt.lastUpdate = now
	pt.lastBytes = pt.transferred
}
