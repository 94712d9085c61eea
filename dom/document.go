// Package dom implements the in-memory element tree that drag tracking
// operates on: elements with marker attributes, cell-grid geometry, inline
// style overrides, pointer event dispatch, and batched mutation observation.
//
// A Document stands in for the host platform's document object. The host
// driver (see package tui) owns the event loop: it assigns layout rects after
// painting, feeds pointer events in via PointerDown/PointerMove/PointerUp,
// and pumps queued mutation records to observers via FlushMutations. All
// methods must be called from that single loop; nothing here locks.
package dom

// MutationRecord describes one tree change: elements added to or removed from
// a target element's child list. Only the nodes directly added or removed
// appear; descendants of an added subtree are not enumerated.
type MutationRecord struct {
	Target  *Element
	Added   []*Element
	Removed []*Element
}

// Subscription represents a registered mutation observer.
type Subscription struct {
	doc *Document
	id  int
}

// Cancel unregisters the observer. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s.doc == nil {
		return
	}
	delete(s.doc.observers, s.id)
	s.doc = nil
}

// Document is the root of an element tree.
type Document struct {
	root *Element

	// captured receives pointer-move and pointer-up dispatch between a
	// pointer-down that hit it and the next pointer-up (implicit pointer
	// capture). This keeps a pressed element interacting even when a
	// discrete pointer jump lands outside its rect.
	captured *Element

	observers map[int]func([]MutationRecord)
	nextObs   int
	pending   []MutationRecord
}

// NewDocument creates an empty document with a root element covering no area
// until the host driver assigns it a layout rect.
func NewDocument() *Document {
	d := &Document{observers: make(map[int]func([]MutationRecord))}
	d.root = newElement(d, "root")
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates a detached element belonging to this document. An
// empty id gets a generated one. The element joins the tree via AppendChild.
func (d *Document) CreateElement(id string) *Element {
	return newElement(d, id)
}

// QueryAttribute returns every element in the tree bearing the named
// attribute, in document order. The empty name matches nothing.
func (d *Document) QueryAttribute(name string) []*Element {
	if name == "" {
		return nil
	}
	var out []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		if _, ok := el.Attribute(name); ok {
			out = append(out, el)
		}
		for _, c := range el.children {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Walk visits every element in the tree in document order, root first.
func (d *Document) Walk(fn func(*Element)) {
	var walk func(*Element)
	walk = func(el *Element) {
		fn(el)
		for _, c := range el.children {
			walk(c)
		}
	}
	walk(d.root)
}

// ElementFromPoint returns the topmost visible element whose bounding rect
// contains (x, y), or nil when nothing is there. Paint order determines
// "topmost": flow elements paint in document order with children above their
// parents, and absolutely positioned elements paint above all flow content.
// display:none subtrees are skipped entirely.
func (d *Document) ElementFromPoint(x, y int) *Element {
	var flow, absolute []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		if el.Hidden() {
			return
		}
		if el.Absolute() {
			absolute = append(absolute, el)
		} else {
			flow = append(flow, el)
		}
		for _, c := range el.children {
			walk(c)
		}
	}
	walk(d.root)
	order := append(flow, absolute...)
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].BoundingRect().Contains(x, y) {
			return order[i]
		}
	}
	return nil
}

// PointerDown hit-tests (x, y), dispatches a pointer-down event to the
// element found there, and captures that element: until the next pointer-up
// it receives all pointer-move and pointer-up dispatch regardless of where
// the pointer is. The returned event carries the target (nil when the point
// hit nothing) and the default-prevented flag for the driver.
func (d *Document) PointerDown(x, y int) *PointerEvent {
	ev := &PointerEvent{X: x, Y: y, Type: PointerDown}
	if el := d.ElementFromPoint(x, y); el != nil {
		d.captured = el
		ev.Target = el
		el.dispatch(ev)
	}
	return ev
}

// PointerMove dispatches a pointer-move event to the captured element, or to
// the element at (x, y) when nothing is captured.
func (d *Document) PointerMove(x, y int) *PointerEvent {
	ev := &PointerEvent{X: x, Y: y, Type: PointerMove}
	target := d.captured
	if target == nil {
		target = d.ElementFromPoint(x, y)
	}
	if target != nil {
		ev.Target = target
		target.dispatch(ev)
	}
	return ev
}

// PointerUp dispatches a pointer-up event to the captured element (releasing
// the capture), or to the element at (x, y) when nothing is captured.
func (d *Document) PointerUp(x, y int) *PointerEvent {
	ev := &PointerEvent{X: x, Y: y, Type: PointerUp}
	target := d.captured
	d.captured = nil
	if target == nil {
		target = d.ElementFromPoint(x, y)
	}
	if target != nil {
		ev.Target = target
		target.dispatch(ev)
	}
	return ev
}

// Observe registers fn to receive batched mutation records on each flush.
func (d *Document) Observe(fn func([]MutationRecord)) *Subscription {
	d.nextObs++
	d.observers[d.nextObs] = fn
	return &Subscription{doc: d, id: d.nextObs}
}

// FlushMutations delivers all queued mutation records to every observer as
// one batch and clears the queue. Batching cadence is the host driver's
// choice; typically once per processed input message. A flush with nothing
// queued is a no-op.
func (d *Document) FlushMutations() {
	if len(d.pending) == 0 {
		return
	}
	batch := d.pending
	d.pending = nil
	for _, fn := range d.observers {
		fn(batch)
	}
}

func (d *Document) record(rec MutationRecord) {
	d.pending = append(d.pending, rec)
}
