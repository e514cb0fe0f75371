// Package event holds the observer lists and notice queue widgets publish through
package event

// Hooks is an ordered observer list
// Add returns an unsubscribe func; calling it more than once is harmless
type Hooks[T any] struct {
	next  uint64
	funcs []hook[T]
}

type hook[T any] struct {
	id uint64
	fn func(T)
}

// Add registers fn and returns its unsubscribe handle
func (h *Hooks[T]) Add(fn func(T)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	h.next++
	id := h.next
	h.funcs = append(h.funcs, hook[T]{id: id, fn: fn})
	return func() { h.remove(id) }
}

func (h *Hooks[T]) remove(id uint64) {
	for i, hk := range h.funcs {
		if hk.id == id {
			// Copy so a Fire in progress keeps its snapshot
			funcs := make([]hook[T], 0, len(h.funcs)-1)
			funcs = append(funcs, h.funcs[:i]...)
			h.funcs = append(funcs, h.funcs[i+1:]...)
			return
		}
	}
}

// Fire calls every registered func in registration order
// Funcs added or removed during Fire take effect on the next call
func (h *Hooks[T]) Fire(v T) {
	funcs := h.funcs
	for _, hk := range funcs {
		hk.fn(v)
	}
}

// Len returns the number of registered funcs
func (h *Hooks[T]) Len() int {
	return len(h.funcs)
}

// Clear drops every registered func
func (h *Hooks[T]) Clear() {
	h.funcs = nil
}
