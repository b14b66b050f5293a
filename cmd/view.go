package cmd

import (
	"github.com/spf13/cobra"

	"github.com/picket-dev/picket/internal/domain"
	m "github.com/picket-dev/picket/internal/model"
)

var viewSelectFlags []string
var viewExcludeFlags []string
var viewSelectorFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [specifiers...]",
		Short: "Browse a selection result interactively",
		Long:  viewLongDescription,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.View(c.Context(), domain.ViewArgs{
				Manifest:  m.Path(manifestFlag),
				Selectors: m.Path(selectorsFlag),
				Select:    append(viewSelectFlags, args...),
				Exclude:   viewExcludeFlags,
				Selector:  viewSelectorFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&viewSelectFlags, "select", "s", nil, "node specifier to include (can be repeated)")
	cmd.Flags().StringArrayVarP(&viewExcludeFlags, "exclude", "x", nil, "node specifier to exclude (can be repeated)")
	cmd.Flags().StringVar(&viewSelectorFlag, "selector", "", "named selector from the selectors file")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
