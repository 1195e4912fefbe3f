package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/autotris/loop"
)

// PerformanceStats is a system that samples each frame's delta time and a
// panel that plots them next to the scheduler's per-system timings.
type PerformanceStats struct {
	scheduler *loop.Scheduler
	history   []float32 // milliseconds, ring buffer
	next      int
}

func NewPerformanceStats(frames int, scheduler *loop.Scheduler) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		history:   make([]float32, frames),
	}
}

func (ps *PerformanceStats) Name() string { return "PerformanceStats" }

func (ps *PerformanceStats) Execute(frame *loop.Frame) {
	ps.Record(frame.DeltaTime)
}

// Record adds a frame time given in seconds.
func (ps *PerformanceStats) Record(dt float64) {
	ps.history[ps.next] = float32(dt * 1000)
	ps.next = (ps.next + 1) % len(ps.history)
}

// AvgFrameTime is the mean over the history in milliseconds.
func (ps *PerformanceStats) AvgFrameTime() float32 {
	var sum float32
	for _, ms := range ps.history {
		sum += ms
	}
	return sum / float32(len(ps.history))
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)
	if !imgui.BeginV("Frame Timings", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.Stats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	if avg := ps.AvgFrameTime(); avg > 0 {
		imgui.Text(fmt.Sprintf("Avg frame: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &ps.history[0], int32(len(ps.history)))

	if imgui.TreeNodeStr("Systems") {
		const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("systems", 4, flags, imgui.NewVec2(0, 0), 0) {
			for _, h := range []string{"System", "Last", "Avg", "Max"} {
				imgui.TableSetupColumn(h)
			}
			imgui.TableHeadersRow()
			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				for _, cell := range []string{sys.Name, formatDuration(sys.Last), formatDuration(sys.Avg()), formatDuration(sys.Max)} {
					imgui.TableNextColumn()
					imgui.Text(cell)
				}
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}
