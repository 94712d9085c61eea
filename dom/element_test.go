package dom

import "testing"

func TestAttributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")

	if _, ok := el.Attribute("data-drag"); ok {
		t.Fatal("attribute should not exist before being set")
	}
	el.SetAttribute("data-drag", "yes")
	if v, ok := el.Attribute("data-drag"); !ok || v != "yes" {
		t.Errorf("expected data-drag=yes, got %q (exists: %v)", v, ok)
	}
	el.RemoveAttribute("data-drag")
	if _, ok := el.Attribute("data-drag"); ok {
		t.Error("attribute should be gone after removal")
	}

	// The empty attribute name never matches.
	el.SetAttribute("", "x")
	if _, ok := el.Attribute(""); ok {
		t.Error("empty attribute name must match nothing")
	}
}

func TestGeneratedID(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("")
	b := doc.CreateElement("")
	if a.ID() == "" || b.ID() == "" {
		t.Fatal("elements created without an id must get a generated one")
	}
	if a.ID() == b.ID() {
		t.Error("generated ids must be unique")
	}
}

func TestBoundingRectOverrides(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	el.SetLayoutRect(Rect{X: 10, Y: 20, Width: 30, Height: 40})

	if got := el.BoundingRect(); got != (Rect{10, 20, 30, 40}) {
		t.Fatalf("layout rect not returned: %+v", got)
	}

	st := el.Style()
	st.SetInt(Left, 100)
	st.SetInt(Top, 200)
	if got := el.BoundingRect(); got != (Rect{100, 200, 30, 40}) {
		t.Errorf("left/top overrides not applied: %+v", got)
	}
	st.SetInt(Width, 5)
	st.SetInt(Height, 6)
	if got := el.BoundingRect(); got != (Rect{100, 200, 5, 6}) {
		t.Errorf("size overrides not applied: %+v", got)
	}

	st.Remove(Left, Top, Width, Height)
	if got := el.BoundingRect(); got != (Rect{10, 20, 30, 40}) {
		t.Errorf("removal did not restore layout rect: %+v", got)
	}
}

func TestAppendChildReparents(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	child := doc.CreateElement("child")
	other := doc.CreateElement("other")
	doc.Root().AppendChild(a)
	doc.Root().AppendChild(b)
	a.AppendChild(child)
	b.AppendChild(other)

	b.AppendChild(child)
	if child.Parent() != b {
		t.Fatalf("child parent = %v, want b", child.Parent())
	}
	if n := len(a.Children()); n != 0 {
		t.Errorf("old parent still has %d children", n)
	}
	kids := b.Children()
	if len(kids) != 2 || kids[1] != child {
		t.Errorf("reparented element must be the last child, got %v", kids)
	}
}

func TestClosest(t *testing.T) {
	doc := NewDocument()
	zone := doc.CreateElement("zone")
	zone.SetAttribute("data-drop", "")
	mid := doc.CreateElement("mid")
	leaf := doc.CreateElement("leaf")
	doc.Root().AppendChild(zone)
	zone.AppendChild(mid)
	mid.AppendChild(leaf)

	if got := leaf.Closest("data-drop"); got != zone {
		t.Errorf("Closest from leaf = %v, want zone", got)
	}
	// Inclusive of the starting element.
	if got := zone.Closest("data-drop"); got != zone {
		t.Errorf("Closest must be inclusive, got %v", got)
	}
	if got := leaf.Closest("data-missing"); got != nil {
		t.Errorf("Closest for absent attribute = %v, want nil", got)
	}
	if got := leaf.Closest(""); got != nil {
		t.Errorf("Closest for empty attribute = %v, want nil", got)
	}
}

func TestListenerHandleRemove(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	doc.Root().AppendChild(el)
	el.SetLayoutRect(Rect{0, 0, 10, 10})

	var calls int
	h := el.AddEventListener(PointerDown, func(*PointerEvent) { calls++ })
	doc.PointerDown(5, 5)
	doc.PointerUp(5, 5)
	h.Remove()
	doc.PointerDown(5, 5)
	doc.PointerUp(5, 5)
	h.Remove() // second removal is a no-op

	if calls != 1 {
		t.Errorf("listener ran %d times, want 1", calls)
	}
}
