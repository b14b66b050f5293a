package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/picket-dev/picket/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayNodes renders the plain table; the interactive view is reserved for
// Browse.
func (t *TUI) DisplayNodes(nodes []m.Node, universeSize int) error {
	renderNodesTable(t.output, nodes, universeSize)

	return nil
}

// DisplayIDs prints one unique ID per line.
func (t *TUI) DisplayIDs(ids []string) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(t.output, id); err != nil {
			return err
		}
	}

	return nil
}

// DisplayWarnings prints warnings above the interactive view.
func (t *TUI) DisplayWarnings(warnings []string) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(t.output, "warning: %s\n", warning)
	}
}

// Browse opens an interactive node list using Bubble Tea.
func (t *TUI) Browse(title string, nodes []m.Node) error {
	model := newBrowseModel(title, nodes)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.withSize(width, height)
		}
	}

	// If list is small, just print and exit
	if !model.needsInteraction() {
		_, err := fmt.Fprint(t.output, model.staticView())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
