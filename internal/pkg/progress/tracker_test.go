package progress

import (
	"bytes"
	"os"
	"oss-upload-helper/internal/pkg/i18n"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMain(m *testing.M) {
	i18n.Init(language.English)
	os.Exit(m.Run())
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(total int64) (*Tracker, *bytes.Buffer, *fakeClock) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)}
	tracker := NewTracker(&buf, total)
	tracker.now = clock.now
	return tracker, &buf, clock
}

func TestTrackerThrottlesDisplay(t *testing.T) {
	tracker, buf, clock := newTestTracker(4096)

	tracker.Set(1024)
	clock.advance(100 * time.Millisecond)
	tracker.Set(2048)
	assert.Empty(t, buf.String())
	assert.Equal(t, int64(2048), tracker.Transferred())

	clock.advance(time.Second)
	tracker.Set(3072)
	assert.Contains(t, buf.String(), "Progress: 3.0 KB / 4.0 KB (75.0%)")
}

func TestTrackerUnknownTotal(t *testing.T) {
	tracker, buf, clock := newTestTracker(0)
	tracker.Set(0)
	clock.advance(time.Second)
	tracker.Set(2048)
	assert.Contains(t, buf.String(), "Progress: 2.0 KB - ")
	assert.NotContains(t, buf.String(), "%")
}

func TestTrackerComplete(t *testing.T) {
	tracker, buf, clock := newTestTracker(0)
	tracker.SetTotal(2048)
	tracker.Set(0)
	clock.advance(2 * time.Second)
	tracker.Set(2048)

	tracker.Complete()
	tracker.Complete()
	tracker.Fail()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "Upload completed!"))
	assert.Contains(t, out, "Total uploaded: 2.0 KB")
	assert.Contains(t, out, "Duration: 2s")
	assert.Contains(t, out, "Average speed: 1.0 KB/s")
}

func TestTrackerFail(t *testing.T) {
	tracker, buf, _ := newTestTracker(100)
	tracker.Fail()
	tracker.Complete()
	assert.Equal(t, "\n", buf.String())
}
