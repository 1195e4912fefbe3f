package loop

import "time"

// Frame is passed to every system during one tick of the scheduler.
type Frame struct {
	// Number counts frames from 1.
	Number    uint64
	DeltaTime float64
	Time      time.Time
	Commands  *Commands
}

func newFrame(number uint64, dt float64, now time.Time) *Frame {
	return &Frame{
		Number:    number,
		DeltaTime: dt,
		Time:      now,
		Commands:  newCommands(),
	}
}
