package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Step     time.Duration
	Seed     uint64
	Weights  tetris.Weights
	Budget   time.Duration

	// Results
	Frames         uint64
	TotalTime      time.Duration
	FrameTime      Stats
	SearchTime     Stats
	Planner        session.PlannerStats
	Rounds         session.RoundStats
	GCPauseMetrics bool
	Memory         MemoryDelta
}

// MemoryDelta is the change in runtime memory counters over the run.
type MemoryDelta struct {
	HeapAlloc  int64
	TotalAlloc uint64
	NumGC      uint32
	GCPause    time.Duration
}

func memoryDelta(before, after *runtime.MemStats) MemoryDelta {
	return MemoryDelta{
		HeapAlloc:  int64(after.HeapAlloc) - int64(before.HeapAlloc),
		TotalAlloc: after.TotalAlloc - before.TotalAlloc,
		NumGC:      after.NumGC - before.NumGC,
		GCPause:    time.Duration(after.PauseTotalNs - before.PauseTotalNs),
	}
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (r *Report) Finalize() {
	r.FrameTime.Finalize()
	r.SearchTime.Finalize()
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := make([]float64, len(s.Samples))
	var total time.Duration
	for i, sample := range s.Samples {
		sorted[i] = float64(sample)
		total += sample
	}
	slices.Sort(sorted)

	s.Min = time.Duration(sorted[0])
	s.Max = time.Duration(sorted[len(sorted)-1])
	s.Avg = total / time.Duration(len(s.Samples))
	s.P50 = time.Duration(stat.Quantile(0.5, stat.Empirical, sorted, nil))
	s.P99 = time.Duration(stat.Quantile(0.99, stat.Empirical, sorted, nil))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Planner Stress Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Simulated Frame:** {{.Step}}
- **Seed:** {{.Seed}}
- **Weights:** {{printf "%+v" .Weights}}

## Frames
- **Total Frames:** {{.Frames}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **P50:** {{.FrameTime.P50}}
  - **P99:** {{.FrameTime.P99}}
  - **Max:** {{.FrameTime.Max}}

## Planner
- **Searches:** {{.Planner.Searches}} ({{.Planner.Failures}} without a placement)
- **Over {{.Budget}} budget:** {{.Planner.OverBudget}} ({{percent .Planner.OverBudget .Planner.Searches}})
- **Search Time:**
  - **Avg:** {{.SearchTime.Avg}}
  - **Min:** {{.SearchTime.Min}}
  - **P50:** {{.SearchTime.P50}}
  - **P99:** {{.SearchTime.P99}}
  - **Max:** {{.SearchTime.Max}}

## Rounds
- **Finished Rounds:** {{.Rounds.Rounds}}
- **Best:** {{.Rounds.BestLines}} lines
- **Average:** {{printf "%.1f" .Rounds.AvgLines}} lines
- **Pieces Locked:** {{.Rounds.Pieces}}

## Memory
- **Heap Alloc Delta:** {{mib .Memory.HeapAlloc}}
- **Allocated:** {{mib .Memory.TotalAlloc}}
- **GC Cycles:** {{.Memory.NumGC}}
{{- if .GCPauseMetrics}}
- **GC Pause Total:** {{.Memory.GCPause}}
{{- end}}
`

	fm := template.FuncMap{
		"mib": func(v any) string {
			switch b := v.(type) {
			case int64:
				return fmt.Sprintf("%.2f MiB", float64(b)/(1<<20))
			case uint64:
				return fmt.Sprintf("%.2f MiB", float64(b)/(1<<20))
			}
			return "n/a"
		},
		"percent": func(part, whole int) string {
			if whole == 0 {
				return "n/a"
			}
			return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(whole))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
