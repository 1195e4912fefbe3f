// Package debugui renders Dear ImGui panels over a running session: frame
// timings, planner latency and live editors for the heuristic weights and
// timers.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/autotris/loop"
	"github.com/plus3/autotris/session"
)

// ImguiItem holds a Dear ImGui render function drawn every frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Front-ends check it before forwarding keys to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input state and defers every item's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      []*ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Add registers a render function and returns its item.
func (i *ImguiSystem) Add(render func()) *ImguiItem {
	item := &ImguiItem{Render: render}
	i.Items = append(i.Items, item)
	return item
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if i.Hidden {
		return
	}
	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Attach registers an ImguiSystem on s carrying the performance and
// autoplay panels.
func Attach(s *session.Session) *ImguiSystem {
	sys := &ImguiSystem{}

	perf := NewPerformanceStats(120, s.Scheduler)
	s.Register(perf)
	sys.Add(perf.Render)

	planner := NewPlannerPanel(s, 120)
	sys.Add(planner.Render)

	s.Register(sys)
	return sys
}
