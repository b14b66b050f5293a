package cmd

import (
	"github.com/spf13/cobra"

	"github.com/picket-dev/picket/internal/domain"
	m "github.com/picket-dev/picket/internal/model"
)

var selectFlags []string
var selectExcludeFlags []string
var selectSelectorFlag string
var selectParallelFlag int
var selectIDsFlag bool

// selectCmd represents the select command.
var selectCmd = newSelectCmd()

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [specifiers...]",
		Short: "Evaluate a selection and print the matching nodes",
		Long:  selectLongDescription,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Select(c.Context(), domain.SelectArgs{
				Manifest:  m.Path(manifestFlag),
				Selectors: m.Path(selectorsFlag),
				Select:    append(selectFlags, args...),
				Exclude:   selectExcludeFlags,
				Selector:  selectSelectorFlag,
				Parallel:  selectParallelFlag,
				IDsOnly:   selectIDsFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&selectFlags, "select", "s", nil, "node specifier to include (can be repeated)")
	cmd.Flags().StringArrayVarP(&selectExcludeFlags, "exclude", "x", nil, "node specifier to exclude (can be repeated)")
	cmd.Flags().StringVar(&selectSelectorFlag, "selector", "", "named selector from the selectors file")
	cmd.Flags().IntVarP(&selectParallelFlag, "parallel", "p", 1, "number of parallel workers for evaluating wide expressions")
	cmd.Flags().BoolVar(&selectIDsFlag, "ids", false, "print unique IDs only, one per line")

	return cmd
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
