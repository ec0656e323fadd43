package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "promptgauge",
		Short: "Heuristic scoring for metaprompt experiment transcripts",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "promptgauge.yaml", "config file path")
	root.AddCommand(newCollectCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newQueryCmd())
	return root
}
