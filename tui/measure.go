package tui

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/joeycumines/go-dragdrop/dom"
)

// Measurer marks rendered element content so its on-screen rect can be
// queried after the frame is scanned. The production implementation wraps a
// bubblezone manager; tests substitute a deterministic fake.
type Measurer interface {
	// Mark wraps content in invisible, zero-width markers tied to id.
	Mark(id, content string) string
	// Scan registers marker positions from a full frame and strips them.
	Scan(frame string) string
	// Rect returns the last scanned rect for id, and whether one is known.
	Rect(id string) (dom.Rect, bool)
	// Close releases resources.
	Close()
}

// zoneMeasurer adapts a bubblezone manager to the Measurer interface. One
// manager per model instance; no global state.
type zoneMeasurer struct {
	m *zone.Manager
}

// NewZoneMeasurer returns a Measurer backed by a fresh bubblezone manager.
func NewZoneMeasurer() Measurer {
	return &zoneMeasurer{m: zone.New()}
}

func (z *zoneMeasurer) Mark(id, content string) string {
	return z.m.Mark(id, content)
}

func (z *zoneMeasurer) Scan(frame string) string {
	return z.m.Scan(frame)
}

func (z *zoneMeasurer) Rect(id string) (dom.Rect, bool) {
	info := z.m.Get(id)
	if info == nil || info.IsZero() {
		return dom.Rect{}, false
	}
	return dom.Rect{
		X:      info.StartX,
		Y:      info.StartY,
		Width:  info.EndX - info.StartX,
		Height: info.EndY - info.StartY,
	}, true
}

func (z *zoneMeasurer) Close() {
	z.m.Close()
}
