// Package perf records wall-clock timings of instrumented functions.
//
// Instrument a function with:
//
//	defer perf.Track(cfg, "pkg.Function")()
//
// Tracking is a no-op until Enable is called (the `--heatmap` flag does this).
package perf

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/cloudposse/ekscli/pkg/schema"
)

const (
	// Histogram bounds in microseconds: 1µs to 10 minutes.
	minTrackable = 1
	maxTrackable = int64(10 * time.Minute / time.Microsecond)
	sigFigs      = 3
)

var (
	enabled  atomic.Bool
	mu       sync.Mutex
	registry = map[string]*metric{}
)

type metric struct {
	hist  *hdrhistogram.Histogram
	total time.Duration
}

// Stat is a snapshot of the timings recorded for one function.
type Stat struct {
	Name  string
	Count int64
	Total time.Duration
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

// Enable turns tracking on.
func Enable() {
	enabled.Store(true)
}

// Disable turns tracking off. Recorded data is kept.
func Disable() {
	enabled.Store(false)
}

// Enabled reports whether tracking is on.
func Enabled() bool {
	return enabled.Load()
}

// Reset discards all recorded data.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = map[string]*metric{}
}

// Track starts timing name and returns the function that stops it.
// The configuration argument is accepted for call-site symmetry and may be nil.
func Track(_ *schema.Configuration, name string) func() {
	if !enabled.Load() {
		return func() {}
	}

	start := time.Now()
	return func() {
		record(name, time.Since(start))
	}
}

func record(name string, elapsed time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	m, ok := registry[name]
	if !ok {
		m = &metric{hist: hdrhistogram.New(minTrackable, maxTrackable, sigFigs)}
		registry[name] = m
	}

	us := elapsed.Microseconds()
	if us < minTrackable {
		us = minTrackable
	}
	if us > maxTrackable {
		us = maxTrackable
	}
	// RecordValue only fails for out-of-range values, which are clamped above.
	_ = m.hist.RecordValue(us)
	m.total += elapsed
}

// Snapshot returns the recorded stats sorted by total time, largest first.
func Snapshot() []Stat {
	mu.Lock()
	defer mu.Unlock()

	stats := make([]Stat, 0, len(registry))
	for name, m := range registry {
		stats = append(stats, Stat{
			Name:  name,
			Count: m.hist.TotalCount(),
			Total: m.total,
			P50:   time.Duration(m.hist.ValueAtQuantile(50)) * time.Microsecond,
			P95:   time.Duration(m.hist.ValueAtQuantile(95)) * time.Microsecond,
			Max:   time.Duration(m.hist.Max()) * time.Microsecond,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total == stats[j].Total {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].Total > stats[j].Total
	})

	return stats
}

// Report writes a plain-text table of the recorded stats to w.
func Report(w io.Writer) error {
	stats := Snapshot()
	if len(stats) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%-50s %8s %12s %12s %12s %12s\n", "Function", "Count", "Total", "P50", "P95", "Max"); err != nil {
		return err
	}
	for _, s := range stats {
		if _, err := fmt.Fprintf(w, "%-50s %8d %12s %12s %12s %12s\n",
			s.Name, s.Count, s.Total.Round(time.Microsecond), s.P50, s.P95, s.Max); err != nil {
			return err
		}
	}
	return nil
}
