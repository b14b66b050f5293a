package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the presentation for the command's output stream: the Bubble
// Tea browser when useTTY is set, plain tables otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal. A writer that is not a
// character device, such as a pipe or a regular file, is not one.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
