// Package dragdrop makes elements of a dom.Document draggable and droppable,
// driven by pointer events, without relying on any host-native drag-and-drop
// interaction. A Tracker discovers draggable elements by marker attribute,
// watches the document for dynamically added matches, and runs the drag
// lifecycle: on pointer-down the element is sized to its captured rect and
// floated under the pointer; every pointer-move re-centers it; pointer-up
// hit-tests beneath it for the nearest dropzone-marked ancestor and reparents
// the element into it.
//
// Each Tracker is an explicit instance owned by the consumer; there is no
// package-level state. Consumers are notified through optional callbacks at
// drag start, drag move, drop, and drag cancel. Callbacks are invoked without
// error containment: a panic in a callback propagates out of the dispatching
// driver.
package dragdrop

import (
	"log/slog"

	"github.com/joeycumines/go-dragdrop/dom"
)

// Options configures a Tracker. All fields are optional. Configure merges:
// zero-valued fields leave the previously configured value untouched, so a
// partial reconfiguration overwrites only what it supplies.
type Options struct {
	// DraggableAttribute marks elements eligible for dragging. If never
	// supplied, discovery matches nothing.
	DraggableAttribute string
	// DropzoneAttribute marks valid drop containers, matched by
	// nearest-ancestor search from the element under the pointer at release.
	DropzoneAttribute string

	// OnDragStart is invoked with the element beginning to drag, before any
	// style mutation is applied to it.
	OnDragStart func(el *dom.Element)
	// OnDragMove is invoked with the element after each repositioning.
	OnDragMove func(el *dom.Element)
	// OnDrop is invoked with the dragged element and the dropzone it was
	// placed into. It fires only on a successful drop.
	OnDrop func(el, zone *dom.Element)
	// OnDragCancel is invoked with the dragged element when the pointer is
	// released with no dropzone under it. Exactly one of OnDrop and
	// OnDragCancel fires per completed gesture.
	OnDragCancel func(el *dom.Element)

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Tracker runs the drag-and-drop interaction lifecycle over one document.
// At most one drag session is active at a time: listeners only fire for the
// element currently under the pointer, and a session begins only on
// pointer-down. Trackers are not safe for concurrent use; the host driver's
// event loop serializes all access.
type Tracker struct {
	doc    *dom.Document
	opts   Options
	logger *slog.Logger

	attached map[*dom.Element][]dom.ListenerHandle
	sub      *dom.Subscription

	// Drag session, valid between pointer-down and pointer-up.
	subject   *dom.Element
	startRect dom.Rect
	startX    int
	startY    int
	pressed   bool
	moved     bool
}

// New creates a Tracker over doc. Call Configure to set attributes and
// callbacks and to attach to matching elements.
func New(doc *dom.Document) *Tracker {
	return &Tracker{
		doc:      doc,
		logger:   slog.Default(),
		attached: make(map[*dom.Element][]dom.ListenerHandle),
	}
}

// Configure merges opts into the tracker's configuration, attaches pointer
// listeners to every element currently bearing the draggable attribute, and
// installs the document mutation watcher (once) so later insertions
// auto-attach. Elements already attached are skipped, so repeated calls are
// idempotent over overlapping element sets.
//
// If no element currently matches the draggable attribute a warning is
// logged; this is not an error, since dynamically added matches still attach
// through the watcher.
func (t *Tracker) Configure(opts Options) {
	if opts.DraggableAttribute != "" {
		t.opts.DraggableAttribute = opts.DraggableAttribute
	}
	if opts.DropzoneAttribute != "" {
		t.opts.DropzoneAttribute = opts.DropzoneAttribute
	}
	if opts.OnDragStart != nil {
		t.opts.OnDragStart = opts.OnDragStart
	}
	if opts.OnDragMove != nil {
		t.opts.OnDragMove = opts.OnDragMove
	}
	if opts.OnDrop != nil {
		t.opts.OnDrop = opts.OnDrop
	}
	if opts.OnDragCancel != nil {
		t.opts.OnDragCancel = opts.OnDragCancel
	}
	if opts.Logger != nil {
		t.logger = opts.Logger
	}

	matched := t.doc.QueryAttribute(t.opts.DraggableAttribute)
	if len(matched) == 0 {
		t.logger.Warn("no elements matched draggable attribute",
			"attribute", t.opts.DraggableAttribute)
	}
	for _, el := range matched {
		t.attach(el)
	}

	if t.sub == nil {
		t.sub = t.doc.Observe(t.onMutations)
	}
}

// Teardown detaches every listener the tracker attached, cancels the mutation
// subscription, and clears any in-progress session. The tracker may be
// reconfigured afterwards.
func (t *Tracker) Teardown() {
	for _, handles := range t.attached {
		for _, h := range handles {
			h.Remove()
		}
	}
	t.attached = make(map[*dom.Element][]dom.ListenerHandle)
	if t.sub != nil {
		t.sub.Cancel()
		t.sub = nil
	}
	t.clearSession()
	t.pressed = false
}

// Moved reports whether the current or most recent interaction included at
// least one pointer move, distinguishing a drag gesture from a plain click.
// The flag resets only at the next pointer-down, not at release: after a drop
// it still reads true until a new drag begins.
func (t *Tracker) Moved() bool { return t.moved }

// Dragging reports whether a drag session is in progress.
func (t *Tracker) Dragging() bool { return t.subject != nil }

// StartPosition returns the pointer coordinates recorded at the pointer-down
// that began the current session. ok is false when no session is active.
func (t *Tracker) StartPosition() (x, y int, ok bool) {
	if t.subject == nil {
		return 0, 0, false
	}
	return t.startX, t.startY, true
}

func (t *Tracker) attach(el *dom.Element) {
	if _, ok := t.attached[el]; ok {
		return
	}
	t.attached[el] = []dom.ListenerHandle{
		el.AddEventListener(dom.PointerDown, t.pointerDown),
		el.AddEventListener(dom.PointerUp, t.pointerUp),
		el.AddEventListener(dom.PointerMove, t.pointerMove),
	}
}

// onMutations attaches to newly added elements bearing the draggable
// attribute. Only top-level added nodes are checked: a matching element
// nested inside a larger inserted subtree is not auto-attached. Known
// limitation, kept so insertion cost stays proportional to record size.
func (t *Tracker) onMutations(records []dom.MutationRecord) {
	attr := t.opts.DraggableAttribute
	if attr == "" {
		return
	}
	for _, rec := range records {
		for _, el := range rec.Added {
			if _, ok := el.Attribute(attr); ok {
				t.attach(el)
			}
		}
	}
}

func (t *Tracker) pointerDown(ev *dom.PointerEvent) {
	t.pressed = true
	t.moved = false

	el := ev.Target
	t.subject = el
	t.startRect = el.BoundingRect()

	if cb := t.opts.OnDragStart; cb != nil {
		cb(el)
	}

	// Freeze the footprint captured at press and float the element centered
	// under the pointer. The captured rect is never re-measured mid-drag.
	st := el.Style()
	st.SetInt(dom.Width, t.startRect.Width)
	st.SetInt(dom.Height, t.startRect.Height)
	t.startX, t.startY = ev.X, ev.Y
	st.SetInt(dom.Left, ev.X-t.startRect.Width/2)
	st.SetInt(dom.Top, ev.Y-t.startRect.Height/2)
	st.Set(dom.Position, dom.PositionAbsolute)

	ev.PreventDefault()
}

func (t *Tracker) pointerMove(ev *dom.PointerEvent) {
	if !t.pressed {
		return
	}
	t.moved = true

	st := t.subject.Style()
	st.SetInt(dom.Left, ev.X-t.startRect.Width/2)
	st.SetInt(dom.Top, ev.Y-t.startRect.Height/2)

	if cb := t.opts.OnDragMove; cb != nil {
		cb(t.subject)
	}
}

func (t *Tracker) pointerUp(ev *dom.PointerEvent) {
	ev.PreventDefault()
	t.pressed = false
	if t.subject == nil {
		return
	}
	el := t.subject
	st := el.Style()

	// Hide the subject so the hit-test finds what is underneath it, not the
	// dragged element itself.
	prevDisplay, hadDisplay := st.Get(dom.Display)
	st.Set(dom.Display, dom.DisplayNone)
	hit := t.doc.ElementFromPoint(ev.X, ev.Y)
	if hadDisplay {
		st.Set(dom.Display, prevDisplay)
	} else {
		st.Remove(dom.Display)
	}

	var zone *dom.Element
	if hit != nil {
		zone = hit.Closest(t.opts.DropzoneAttribute)
	}
	if zone != nil {
		zone.AppendChild(el)
		if cb := t.opts.OnDrop; cb != nil {
			cb(el, zone)
		}
	} else {
		// No valid target: the element keeps whatever parent it had during
		// the drag; it is not returned to its pre-drag location.
		if cb := t.opts.OnDragCancel; cb != nil {
			cb(el)
		}
	}

	st.Remove(dom.Left, dom.Top, dom.Width, dom.Height, dom.Position)
	t.clearSession()
}

func (t *Tracker) clearSession() {
	t.subject = nil
	t.startRect = dom.Rect{}
	t.startX, t.startY = 0, 0
}
