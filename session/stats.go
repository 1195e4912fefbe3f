package session

import (
	"time"

	"github.com/plus3/autotris/tetris"
)

// FrameBudget is the time the planner has before it delays a 60Hz frame.
const FrameBudget = time.Second / 60

// PlannerStats accumulates autoplay search latencies.
type PlannerStats struct {
	Searches   int
	Failures   int
	OverBudget int
	Total      time.Duration
	Max        time.Duration
	Last       time.Duration
	// Candidates is the number of placements graded by the last search.
	Candidates int
	LastGrade  float32
}

func (s *PlannerStats) observe(p tetris.Plan, took time.Duration, err error) {
	s.Searches++
	if err != nil {
		s.Failures++
	}
	if took > FrameBudget {
		s.OverBudget++
	}
	s.Total += took
	s.Max = max(s.Max, took)
	s.Last = took
	s.Candidates = p.Candidates
	s.LastGrade = p.Grade
}

// Avg returns the mean search duration.
func (s PlannerStats) Avg() time.Duration {
	if s.Searches == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Searches)
}

// RoundStats summarises finished rounds.
type RoundStats struct {
	Rounds    int
	BestLines int
	Lines     int
	Pieces    int
	// Recent holds the line counts of the latest rounds, oldest first.
	Recent []int
}

const recentRounds = 32

func (r *RoundStats) observe(o tetris.Outcome) {
	r.Rounds++
	r.Lines += o.Lines
	r.Pieces += o.Pieces
	r.BestLines = max(r.BestLines, o.Lines)
	r.Recent = append(r.Recent, o.Lines)
	if len(r.Recent) > recentRounds {
		r.Recent = r.Recent[len(r.Recent)-recentRounds:]
	}
}

// AvgLines returns the mean lines per finished round.
func (r RoundStats) AvgLines() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Lines) / float64(r.Rounds)
}
