package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/picket-dev/picket/internal/model"
)

// SimpleUI renders results as plain text on the command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a SimpleUI bound to the command's streams.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

func (ui *SimpleUI) DisplayNodes(nodes []m.Node, universeSize int) error {
	renderNodesTable(ui.cmd.OutOrStdout(), nodes, universeSize)

	return nil
}

func (ui *SimpleUI) DisplayIDs(ids []string) error {
	out := ui.cmd.OutOrStdout()
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}

	return nil
}

func (ui *SimpleUI) DisplayWarnings(warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(ui.cmd.ErrOrStderr(), "warning: %s\n", warning)
	}
}

// Browse has no interactive medium here and renders the table instead.
func (ui *SimpleUI) Browse(title string, nodes []m.Node) error {
	fmt.Fprintln(ui.cmd.OutOrStdout(), title)

	return ui.DisplayNodes(nodes, len(nodes))
}

func renderNodesTable(w io.Writer, nodes []m.Node, universeSize int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "KIND", "TAGS", "PATH"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, node := range nodes {
		table.Append([]string{
			node.UniqueID,
			string(node.Kind),
			strings.Join(node.Tags, ", "),
			node.Path,
		})
	}

	table.SetFooter([]string{
		"", "",
		fmt.Sprintf("selected %d", len(nodes)),
		fmt.Sprintf("of %d", universeSize),
	})
	table.Render()
}
