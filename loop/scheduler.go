package loop

import (
	"context"
	"reflect"
	"time"
)

// SystemStats are the execution timings of one registered system.
type SystemStats struct {
	Name  string
	Runs  int64
	Last  time.Duration
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
}

// Avg is zero until the system has run.
func (s SystemStats) Avg() time.Duration {
	if s.Runs == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Runs)
}

func (s *SystemStats) record(d time.Duration) {
	if s.Runs == 0 || d < s.Min {
		s.Min = d
	}
	s.Max = max(s.Max, d)
	s.Last = d
	s.Total += d
	s.Runs++
}

// Stats is a copy of the scheduler's counters.
type Stats struct {
	Frames  uint64
	Runs    int64
	Systems []SystemStats
}

type entry struct {
	system System
	stats  SystemStats
}

// Scheduler executes systems in registration order on the calling goroutine.
type Scheduler struct {
	entries []*entry
	frames  uint64
	now     func() time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// Register appends a system. It runs after every system registered before it.
func (s *Scheduler) Register(system System) {
	s.entries = append(s.entries, &entry{
		system: system,
		stats:  SystemStats{Name: systemName(system)},
	})
}

func systemName(system System) string {
	if n, ok := system.(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(system)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once executes all registered systems once with the given delta time, then
// flushes the frame's commands. It reports whether a system asked to stop.
func (s *Scheduler) Once(dt float64) bool {
	s.frames++
	frame := newFrame(s.frames, dt, s.now())

	for _, e := range s.entries {
		start := time.Now()
		e.system.Execute(frame)
		e.stats.record(time.Since(start))
	}
	return frame.Commands.Flush()
}

// Run calls Once every interval, passing the measured time between ticks,
// until ctx is done or a system calls Commands.Stop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if s.Once(dt) {
				return
			}
		}
	}
}

// Stats returns a copy of the frame count and per-system timings.
func (s *Scheduler) Stats() Stats {
	stats := Stats{
		Frames:  s.frames,
		Systems: make([]SystemStats, len(s.entries)),
	}
	for i, e := range s.entries {
		stats.Systems[i] = e.stats
		stats.Runs += e.stats.Runs
	}
	return stats
}
