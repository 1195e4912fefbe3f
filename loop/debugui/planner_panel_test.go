package debugui

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/autotris/config"
	"github.com/plus3/autotris/session"
)

func TestPlannerPanelLatencyRing(t *testing.T) {
	s := session.New(config.Default(), log.New(io.Discard, "", 0))
	p := NewPlannerPanel(s, 3)

	for i, ms := range []int{1, 2, 3, 4} {
		p.sample(session.PlannerStats{Searches: i + 1, Last: time.Duration(ms) * time.Millisecond})
	}
	// A repeated search count is not a new sample.
	p.sample(session.PlannerStats{Searches: 4, Last: time.Hour})

	assert.Equal(t, []float32{2, 3, 4}, p.ordered())
}
