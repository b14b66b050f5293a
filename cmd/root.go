// Package cmd provides the root command and CLI setup for picket.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/picket-dev/picket/internal/adapter"
	"github.com/picket-dev/picket/internal/controller"
	"github.com/picket-dev/picket/internal/domain"
	m "github.com/picket-dev/picket/internal/model"
)

var manifestStore adapter.ManifestStore
var selectorStore adapter.SelectorStore
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	manifestStore = adapter.NewManifestStore()
	selectorStore = adapter.NewSelectorStore()
	workflow = domain.NewWorkflow(manifestStore, selectorStore, ui)
}

var manifestFlag string
var selectorsFlag string
var rootParallelFlag int
var rootIDsFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picket [specifiers...]",
		Short: "Select nodes from a build graph",
		Long:  rootLongDescription,
		RunE: func(c *cobra.Command, args []string) error {
			return workflow.Select(c.Context(), domain.SelectArgs{
				Manifest:  m.Path(manifestFlag),
				Selectors: m.Path(selectorsFlag),
				Select:    args,
				Parallel:  rootParallelFlag,
				IDsOnly:   rootIDsFlag,
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&manifestFlag, "manifest", "m", "manifest.json", "path to the manifest file")
	cmd.PersistentFlags().StringVar(&selectorsFlag, "selectors", "selectors.yml", "path to the selectors file")
	cmd.Flags().IntVarP(&rootParallelFlag, "parallel", "p", 1, "number of parallel workers for evaluating wide expressions")
	cmd.Flags().BoolVar(&rootIDsFlag, "ids", false, "print unique IDs only, one per line")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
