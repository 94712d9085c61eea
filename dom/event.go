package dom

// EventType identifies a pointer event kind.
type EventType int

const (
	PointerDown EventType = iota
	PointerUp
	PointerMove
)

// String returns a human-readable event type name, for logs and test output.
func (t EventType) String() string {
	switch t {
	case PointerDown:
		return "pointerdown"
	case PointerUp:
		return "pointerup"
	case PointerMove:
		return "pointermove"
	default:
		return "unknown"
	}
}

// PointerEvent is delivered to element listeners when the document dispatches
// a pointer event. X and Y are document (cell) coordinates.
type PointerEvent struct {
	X      int
	Y      int
	Type   EventType
	Target *Element

	defaultPrevented bool
}

// PreventDefault marks the event so the host driver skips whatever default
// action it would otherwise take for it.
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called by any listener.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener handles a pointer event on an element.
type Listener func(*PointerEvent)

type listenerEntry struct {
	id int
	fn Listener
}

// ListenerHandle identifies a registered listener so it can be removed.
type ListenerHandle struct {
	el  *Element
	typ EventType
	id  int
}

// Remove unregisters the listener. Removing an already-removed listener is a
// no-op.
func (h ListenerHandle) Remove() {
	if h.el == nil {
		return
	}
	entries := h.el.listeners[h.typ]
	for i, e := range entries {
		if e.id == h.id {
			h.el.listeners[h.typ] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}
