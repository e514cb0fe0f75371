// Package terminal hosts an engine.World on a tcell screen.
//
// Screen implements engine.Sink, clipping every frame to its box and to the
// terminal. Service polls tcell events on its own goroutine and turns keys
// into the names the widget key mappers expect; Service.Run ties both
// together into a redraw-on-change event loop.
package terminal
