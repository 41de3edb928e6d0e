package perf

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Timer measures one operation and logs its duration at debug level,
// warning when it exceeds the threshold. A nil logger disables output.
type Timer struct {
	name     string
	logger   *slog.Logger
	start    time.Time
	threshMs int64
}

func NewTimer(name string, logger *slog.Logger, threshMs int64) *Timer {
	return &Timer{
		name:     name,
		logger:   logger,
		start:    time.Now(),
		threshMs: threshMs,
	}
}

func (t *Timer) Stop() {
	elapsed := time.Since(t.start)
	if t.logger != nil {
		t.logger.Debug(t.name, "duration_ms", elapsed.Milliseconds())
		if elapsed.Milliseconds() > t.threshMs {
			t.logger.Warn(t.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", t.threshMs)
		}
	}
}

// Counter is an atomic operation counter.
type Counter struct {
	value int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

func (c *Counter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

func (c *Counter) Reset() {
	atomic.StoreInt64(&c.value, 0)
}
