package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/autotris/session"
	"github.com/plus3/autotris/tetris"
)

// PlannerPanel shows what the autoplay planner is doing and lets the weights
// and timers be edited while the game runs.
type PlannerPanel struct {
	session *session.Session

	latency      []float32
	offset       int
	lastSearches int
	defaults     tetris.Weights
}

func NewPlannerPanel(s *session.Session, history int) *PlannerPanel {
	return &PlannerPanel{
		session:  s,
		latency:  make([]float32, history),
		defaults: *s.Game.Weights(),
	}
}

// sample records the latest search latency once per new search.
func (p *PlannerPanel) sample(stats session.PlannerStats) {
	if stats.Searches == p.lastSearches {
		return
	}
	p.lastSearches = stats.Searches
	p.latency[p.offset] = float32(stats.Last.Microseconds()) / 1000
	p.offset = (p.offset + 1) % len(p.latency)
}

// ordered returns the latency ring oldest first.
func (p *PlannerPanel) ordered() []float32 {
	out := make([]float32, len(p.latency))
	copy(out, p.latency[p.offset:])
	copy(out[len(p.latency)-p.offset:], p.latency[:p.offset])
	return out
}

func (p *PlannerPanel) Render() {
	s := p.session
	game := s.Game
	stats := s.PlannerStats()
	p.sample(stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 460), imgui.CondOnce)
	if !imgui.BeginV("Autoplay", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if game.Autoplay() {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.8, 0.3, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.6, 0.1, 0.1, 1.0))
		if imgui.Button("Stop autoplay") {
			s.Input.ToggleAutoplay()
		}
	} else {
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonHovered, imgui.NewVec4(0.3, 0.8, 0.3, 1.0))
		imgui.PushStyleColorVec4(imgui.ColButtonActive, imgui.NewVec4(0.1, 0.6, 0.1, 1.0))
		if imgui.Button("Start autoplay") {
			s.Input.ToggleAutoplay()
		}
	}
	imgui.PopStyleColor()
	imgui.PopStyleColor()
	imgui.PopStyleColor()

	imgui.SameLine()
	if s.Paused() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Searches: %d (%d failed)", stats.Searches, stats.Failures))
	imgui.Text(fmt.Sprintf("Latency avg/max: %s / %s", formatDuration(stats.Avg()), formatDuration(stats.Max)))
	imgui.Text(fmt.Sprintf("Over frame budget: %d", stats.OverBudget))
	imgui.Text(fmt.Sprintf("Candidates: %d  Grade: %.3f", stats.Candidates, stats.LastGrade))

	plan := game.LastPlan()
	imgui.Text("Plan: " + joinActions(plan.Actions))
	imgui.Text(fmt.Sprintf("Queued: %d", len(game.Queued())))

	samples := p.ordered()
	if implot.BeginPlotV("Search latency", imgui.NewVec2(-1, 150), 0) {
		implot.SetupAxesV("Search", "ms", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("latency", &samples[0], int32(len(samples)))
		implot.EndPlot()
	}

	if imgui.TreeNodeStr("Weights") {
		EditStruct("weights", game.Weights())
		if imgui.Button("Restore") {
			*game.Weights() = p.defaults
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Timing") {
		EditStruct("timing", game.Timing())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Rounds") {
		rounds := s.RoundStats()
		imgui.Text(fmt.Sprintf("Rounds: %d", rounds.Rounds))
		imgui.Text(fmt.Sprintf("Best: %d lines  Avg: %.1f lines", rounds.BestLines, rounds.AvgLines()))
		if len(rounds.Recent) > 0 {
			recent := make([]float32, len(rounds.Recent))
			for i, n := range rounds.Recent {
				recent[i] = float32(n)
			}
			imgui.PlotLinesFloatPtr("##recent", &recent[0], int32(len(recent)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func joinActions(actions []tetris.Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
