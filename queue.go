package gizmo

import "slices"

// Enqueue appends cmd to the queue. Nil commands are ignored.
// Commands run in the order they were enqueued.
func (dc *DrawContext) Enqueue(cmd Command) {
	if cmd == nil {
		return
	}
	dc.mu.Lock()
	dc.queue = append(dc.queue, cmd)
	dc.mu.Unlock()
}

// Clear drops every pending command without executing it.
// The context color is not affected.
func (dc *DrawContext) Clear() {
	dc.mu.Lock()
	dc.reset()
	dc.mu.Unlock()
}

// Len returns the number of pending commands.
func (dc *DrawContext) Len() int {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return len(dc.queue)
}

// Commands returns a copy of the pending commands in execution order.
func (dc *DrawContext) Commands() []Command {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return slices.Clone(dc.queue)
}

// reset empties the queue and releases the dropped commands.
// The caller must hold dc.mu.
func (dc *DrawContext) reset() {
	clear(dc.queue)
	dc.queue = dc.queue[:0]
}
