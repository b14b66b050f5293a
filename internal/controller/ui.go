// Package controller renders selection results to the user.
package controller

import (
	m "github.com/picket-dev/picket/internal/model"
)

// UI presents selection results. Implementations decide the medium: plain
// tables on the command's output stream, or an interactive browser on a TTY.
type UI interface {
	// DisplayNodes renders the selected nodes as a table, with the universe
	// size for context.
	DisplayNodes(nodes []m.Node, universeSize int) error
	// DisplayIDs prints one unique ID per line, for piping into other tools.
	DisplayIDs(ids []string) error
	// DisplayWarnings reports non-fatal problems encountered while parsing.
	DisplayWarnings(warnings []string)
	// Browse opens an interactive view over the nodes where the medium
	// supports one, and falls back to DisplayNodes where it does not.
	Browse(title string, nodes []m.Node) error
}
