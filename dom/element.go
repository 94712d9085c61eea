package dom

import "github.com/google/uuid"

// Element is a node in a Document. Elements carry string attributes, a layout
// rect assigned by the host driver, inline style overrides, text content, and
// pointer event listeners. Elements are created with Document.CreateElement
// and are owned by the document tree.
//
// Elements are not safe for concurrent use; the host driver's event loop
// serializes all access.
type Element struct {
	id       string
	doc      *Document
	parent   *Element
	children []*Element

	attrs   map[string]string
	style   Style
	layout  Rect
	content string

	listeners  map[EventType][]listenerEntry
	nextListen int
}

// ID returns the element's stable identity, assigned at creation.
func (el *Element) ID() string { return el.id }

// Parent returns the element's parent, or nil for the root and for detached
// elements.
func (el *Element) Parent() *Element { return el.parent }

// Children returns the element's children in document order. The returned
// slice must not be mutated.
func (el *Element) Children() []*Element { return el.children }

// Style returns the element's inline style overrides for mutation.
func (el *Element) Style() *Style { return &el.style }

// Content returns the element's text content.
func (el *Element) Content() string { return el.content }

// SetContent replaces the element's text content.
func (el *Element) SetContent(s string) { el.content = s }

// SetAttribute sets a marker attribute. Empty names are ignored.
func (el *Element) SetAttribute(name, value string) {
	if name == "" {
		return
	}
	if el.attrs == nil {
		el.attrs = make(map[string]string)
	}
	el.attrs[name] = value
}

// RemoveAttribute deletes a marker attribute.
func (el *Element) RemoveAttribute(name string) {
	delete(el.attrs, name)
}

// Attribute returns the attribute value and whether the attribute is present.
// The empty attribute name matches nothing.
func (el *Element) Attribute(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v, ok := el.attrs[name]
	return v, ok
}

// LayoutRect returns the rect most recently assigned by the host driver.
func (el *Element) LayoutRect() Rect { return el.layout }

// SetLayoutRect records the element's measured position and size. The host
// driver calls this after each paint.
func (el *Element) SetLayoutRect(r Rect) { el.layout = r }

// BoundingRect returns the element's effective geometry: the layout rect,
// with any inline left/top/width/height overrides applied on top. An
// absolutely positioned element is located entirely by its overrides.
func (el *Element) BoundingRect() Rect {
	r := el.layout
	if v, ok := el.style.Int(Left); ok {
		r.X = v
	}
	if v, ok := el.style.Int(Top); ok {
		r.Y = v
	}
	if v, ok := el.style.Int(Width); ok {
		r.Width = v
	}
	if v, ok := el.style.Int(Height); ok {
		r.Height = v
	}
	return r
}

// Hidden reports whether the element is display:none.
func (el *Element) Hidden() bool {
	v, ok := el.style.Get(Display)
	return ok && v == DisplayNone
}

// Absolute reports whether the element is position:absolute, i.e. floating
// free of normal flow.
func (el *Element) Absolute() bool {
	v, ok := el.style.Get(Position)
	return ok && v == PositionAbsolute
}

// AddEventListener registers a pointer event listener and returns a handle
// for later removal. Listeners for the same type run in registration order.
func (el *Element) AddEventListener(t EventType, fn Listener) ListenerHandle {
	if el.listeners == nil {
		el.listeners = make(map[EventType][]listenerEntry)
	}
	el.nextListen++
	el.listeners[t] = append(el.listeners[t], listenerEntry{id: el.nextListen, fn: fn})
	return ListenerHandle{el: el, typ: t, id: el.nextListen}
}

// dispatch invokes the element's listeners for the event type. Listener
// panics are not contained; they propagate to the dispatching driver.
func (el *Element) dispatch(ev *PointerEvent) {
	for _, entry := range el.listeners[ev.Type] {
		entry.fn(ev)
	}
}

// AppendChild reparents child as the last child of el. If child already has a
// parent it is removed from it first. Both the removal and the addition are
// queued as mutation records, delivered on the document's next flush.
func (el *Element) AppendChild(child *Element) {
	if child == nil || child == el {
		return
	}
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = el
	el.children = append(el.children, child)
	if el.doc != nil && el.connected() {
		el.doc.record(MutationRecord{Target: el, Added: []*Element{child}})
	}
}

// RemoveChild detaches child from el. It is a no-op when child is not a
// direct child of el.
func (el *Element) RemoveChild(child *Element) {
	if child == nil || child.parent != el {
		return
	}
	el.detach(child)
}

func (el *Element) detach(child *Element) {
	for i, c := range el.children {
		if c == child {
			el.children = append(el.children[:i:i], el.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	if el.doc != nil && el.connected() {
		el.doc.record(MutationRecord{Target: el, Removed: []*Element{child}})
	}
}

// connected reports whether the element is attached to its document's tree.
// Mutations under detached subtrees are not observable: only the eventual
// insertion of the subtree's top-level node produces a record.
func (el *Element) connected() bool {
	for cur := el; cur != nil; cur = cur.parent {
		if cur == el.doc.root {
			return true
		}
	}
	return false
}

// Closest walks upward from the element (inclusive) and returns the nearest
// element bearing the named attribute, or nil when no ancestor matches. The
// empty attribute name matches nothing.
func (el *Element) Closest(attr string) *Element {
	if attr == "" {
		return nil
	}
	for cur := el; cur != nil; cur = cur.parent {
		if _, ok := cur.Attribute(attr); ok {
			return cur
		}
	}
	return nil
}

func newElement(doc *Document, id string) *Element {
	if id == "" {
		id = uuid.NewString()
	}
	return &Element{id: id, doc: doc}
}
