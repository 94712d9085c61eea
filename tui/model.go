// Package tui hosts a dom.Document in a Bubble Tea program. The model is the
// "host platform" the drag tracker assumes: it paints the element tree with
// lipgloss, measures painted element rects with bubblezone markers, translates
// mouse messages into document pointer events, and pumps queued mutation
// records after each processed message, so mutation observers run on the
// loop's cadence, batched per input message.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joeycumines/go-dragdrop/dom"
)

// Styles controls how elements are painted. Container elements (those with
// children) use Zone; leaves use Item; the element being dragged uses
// Floating.
type Styles struct {
	Zone     lipgloss.Style
	Item     lipgloss.Style
	Floating lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the styles used when none are supplied.
func DefaultStyles() Styles {
	return Styles{
		Zone: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Floating: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Faint(true),
	}
}

// KeyMap defines the key bindings the model handles itself.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// Option is used to set options in New.
type Option func(*Model)

// WithMeasurer substitutes the rect measurer; tests use a deterministic fake.
func WithMeasurer(m Measurer) Option {
	return func(mdl *Model) {
		mdl.meas = m
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(mdl *Model) {
		mdl.styles = s
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(mdl *Model) {
		mdl.keys = k
	}
}

// Model hosts a document as a tea.Model. Status is a caller-owned line
// rendered under the board; applications typically set it from drag
// callbacks.
type Model struct {
	Status string

	doc    *dom.Document
	meas   Measurer
	styles Styles
	keys   KeyMap
	help   help.Model

	width  int
	height int
}

// New creates a model hosting doc.
func New(doc *dom.Document, opts ...Option) Model {
	m := Model{
		doc:    doc,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.meas == nil {
		m.meas = NewZoneMeasurer()
	}
	return m
}

// Document returns the hosted document.
func (m Model) Document() *dom.Document { return m.doc }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model. Mouse messages are translated into document
// pointer events using the rects measured at the last paint; any tree
// mutations the handlers queued are flushed afterwards as one batch.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.doc.Root().SetLayoutRect(dom.Rect{X: 0, Y: 0, Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.meas.Close()
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.syncRects()
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.doc.PointerDown(msg.X, msg.Y)
			}
		case tea.MouseActionMotion:
			m.doc.PointerMove(msg.X, msg.Y)
		case tea.MouseActionRelease:
			// X10 encoding reports every release as MouseButtonNone; SGR
			// names the button, so anything else is not a left release.
			if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
				m.doc.PointerUp(msg.X, msg.Y)
			}
		}
		m.doc.FlushMutations()
	}
	return m, nil
}

// View implements tea.Model. Flow content is composed with lipgloss, marked
// for measurement, and scanned; absolutely positioned elements are then
// overlaid at their style coordinates, painted above all flow content.
func (m Model) View() string {
	var columns []string
	for _, el := range m.doc.Root().Children() {
		if el.Hidden() || el.Absolute() {
			continue
		}
		columns = append(columns, m.renderFlow(el))
	}
	frame := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	footer := m.styles.Status.Render(m.Status) + "\n" + m.help.View(m.keys)
	frame = lipgloss.JoinVertical(lipgloss.Left, frame, footer)
	frame = m.meas.Scan(frame)
	if m.width > 0 && m.height > 0 {
		// Pad to the full terminal so floating elements can be painted
		// anywhere on screen, not just over flow content.
		frame = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, frame)
	}

	m.doc.Walk(func(el *dom.Element) {
		if !el.Absolute() || el.Hidden() {
			return
		}
		r := el.BoundingRect()
		box := m.renderFloating(el, r)
		frame = overlay(frame, box, r.X, r.Y)
	})
	return frame
}

// renderFlow paints an element and its flow descendants, wrapping each box in
// measurement markers. Absolute and hidden children are excluded from flow.
func (m Model) renderFlow(el *dom.Element) string {
	var parts []string
	if el.Content() != "" {
		parts = append(parts, el.Content())
	}
	for _, c := range el.Children() {
		if c.Hidden() || c.Absolute() {
			continue
		}
		parts = append(parts, m.renderFlow(c))
	}
	style := m.styles.Item
	if len(el.Children()) > 0 {
		style = m.styles.Zone
	}
	box := style.Render(strings.Join(parts, "\n"))
	return m.meas.Mark(el.ID(), box)
}

// renderFloating paints the dragged element at its frozen footprint. The
// border comes out of the captured rect, not on top of it; lipgloss width
// and height already include padding.
func (m Model) renderFloating(el *dom.Element, r dom.Rect) string {
	style := m.styles.Floating
	w := r.Width - style.GetHorizontalBorderSize()
	h := r.Height - style.GetVerticalBorderSize()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return style.Width(w).Height(h).Render(el.Content())
}

// syncRects copies the most recent measurements into element layout rects.
// Elements that have never been painted keep their previous rect.
func (m Model) syncRects() {
	m.doc.Walk(func(el *dom.Element) {
		if r, ok := m.meas.Rect(el.ID()); ok {
			el.SetLayoutRect(r)
		}
	})
}
