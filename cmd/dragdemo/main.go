// Command dragdemo hosts a small kanban board in the terminal: cards are
// draggable with the mouse and columns are dropzones. It exists to exercise
// the dragdrop tracker against the tui driver end to end.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/joeycumines/go-dragdrop"
	"github.com/joeycumines/go-dragdrop/dom"
	"github.com/joeycumines/go-dragdrop/internal/config"
	"github.com/joeycumines/go-dragdrop/tui"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a dragdemo config file")
	flag.Parse()

	cfg := config.NewConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	for _, w := range cfg.Warnings {
		slog.Warn("config issue", "detail", w)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("dragdemo requires a terminal")
	}

	dragAttr, _ := cfg.GetOption("draggable-attribute")
	dropAttr, _ := cfg.GetOption("dropzone-attribute")

	doc := buildBoard(cfg, dragAttr, dropAttr)
	// Board construction predates tracking; nobody observes these records.
	doc.FlushMutations()

	status := "drag a card between columns"
	tracker := dragdrop.New(doc)
	tracker.Configure(dragdrop.Options{
		DraggableAttribute: dragAttr,
		DropzoneAttribute:  dropAttr,
		OnDragStart: func(el *dom.Element) {
			status = fmt.Sprintf("dragging %q", el.Content())
		},
		OnDrop: func(el, zone *dom.Element) {
			status = fmt.Sprintf("%q dropped into %q", el.Content(), zone.Content())
		},
		OnDragCancel: func(el *dom.Element) {
			status = fmt.Sprintf("%q released with no target", el.Content())
		},
	})
	defer tracker.Teardown()

	if line, ok := cfg.GetOption("status-line"); ok && line != "" {
		status = line
	}

	a := app{board: tui.New(doc), status: &status}
	_, err := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

// buildBoard constructs the document tree from the configured columns.
func buildBoard(cfg *config.Config, dragAttr, dropAttr string) *dom.Document {
	doc := dom.NewDocument()
	for _, col := range cfg.Columns {
		zone := doc.CreateElement("col-" + col.ID)
		zone.SetAttribute(dropAttr, col.ID)
		zone.SetContent(col.Title)
		doc.Root().AppendChild(zone)
		for i, card := range col.Cards {
			el := doc.CreateElement(fmt.Sprintf("card-%s-%d", col.ID, i))
			el.SetAttribute(dragAttr, "")
			el.SetContent(card)
			zone.AppendChild(el)
		}
	}
	return doc
}

// app wires the drag callbacks' status line into the board model.
type app struct {
	board  tui.Model
	status *string
}

func (a app) Init() tea.Cmd { return a.board.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	mdl, cmd := a.board.Update(msg)
	a.board = mdl.(tui.Model)
	a.board.Status = *a.status
	return a, cmd
}

func (a app) View() string { return a.board.View() }
