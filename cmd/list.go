package cmd

import (
	"github.com/spf13/cobra"

	"github.com/picket-dev/picket/internal/domain"
	m "github.com/picket-dev/picket/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every node of the manifest",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(c *cobra.Command, _ []string) error {
			return workflow.List(c.Context(), domain.ListArgs{
				Manifest: m.Path(manifestFlag),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
