package loop

// Commands buffers work that must run after every system has executed,
// such as rendering the result of a frame or ending the loop.
type Commands struct {
	defers []func()
	stop   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the scheduler to return from Run once this frame is flushed.
func (c *Commands) Stop() {
	c.stop = true
}

// Flush runs deferred functions in the order they were queued and resets the
// buffer. It reports whether Stop was requested.
func (c *Commands) Flush() bool {
	for _, fn := range c.defers {
		fn()
	}
	stop := c.stop
	c.defers = c.defers[:0]
	c.stop = false
	return stop
}
