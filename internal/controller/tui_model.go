package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/picket-dev/picket/internal/model"
)

// nodeItem wraps a node for display in the browse list.
type nodeItem struct {
	node m.Node
}

func (i nodeItem) FilterValue() string { return i.node.UniqueID }

// nodeDelegate renders one node per line.
type nodeDelegate struct{}

func (d nodeDelegate) Height() int  { return 1 }
func (d nodeDelegate) Spacing() int { return 0 }
func (d nodeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d nodeDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(nodeItem)
	if !ok {
		return
	}

	isSelected := index == l.Index()

	var idStyle, kindStyle lipgloss.Style

	if isSelected {
		idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		kindStyle = idStyle
	} else {
		idStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	line := fmt.Sprintf("%s  %s",
		kindStyle.Render(fmt.Sprintf("%-8s", entry.node.Kind)),
		idStyle.Render(entry.node.UniqueID),
	)
	_, _ = fmt.Fprint(w, line)
}

// browseModel is the Bubble Tea model for the interactive node browser.
type browseModel struct {
	title    string
	nodes    []m.Node
	nodeList list.Model
	width    int
	height   int
}

func newBrowseModel(title string, nodes []m.Node) browseModel {
	items := make([]list.Item, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, nodeItem{node: node})
	}

	nodeList := list.New(items, nodeDelegate{}, 80, 20)
	nodeList.SetShowPagination(false)
	nodeList.SetShowFilter(true)
	nodeList.SetShowHelp(false)
	nodeList.SetShowTitle(false)
	nodeList.SetShowStatusBar(false)
	nodeList.FilterInput.Placeholder = "Filter by ID…"

	return browseModel{
		title:    title,
		nodes:    nodes,
		nodeList: nodeList,
	}
}

func (bm browseModel) withSize(width, height int) browseModel {
	bm.width = width
	bm.height = height

	return bm
}

// needsInteraction returns true if the list is too large to fit on screen.
func (bm browseModel) needsInteraction() bool {
	if len(bm.nodes) == 0 {
		return false
	}

	// Reserve space for the title and footer lines.
	reserved := 4

	return bm.height > 0 && len(bm.nodes) > bm.height-reserved
}

func (bm browseModel) Init() tea.Cmd {
	return nil
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.nodeList.SetWidth(bm.width)
		bm.nodeList.SetHeight(bm.height - 4)

		return bm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return bm, tea.Quit
		default:
			var cmd tea.Cmd

			bm.nodeList, cmd = bm.nodeList.Update(msg)

			return bm, cmd
		}
	}

	return bm, nil
}

func (bm browseModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(bm.title),
		bm.nodeList.View(),
		footerStyle.Render("↑/k: up | ↓/j: down | /: filter | q: quit"),
	)
}

// staticView renders the node list without interaction, for small outputs
// and non-terminal streams.
func (bm browseModel) staticView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", bm.title)

	if len(bm.nodes) == 0 {
		b.WriteString("  no nodes selected\n")

		return b.String()
	}

	for i, node := range bm.nodes {
		fmt.Fprintf(&b, "  %2d. %-8s %s\n", i+1, node.Kind, node.UniqueID)
	}

	return b.String()
}
