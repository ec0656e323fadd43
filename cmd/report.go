package cmd

import (
	"os"

	"github.com/softmetal/promptgauge/internal/config"
	"github.com/softmetal/promptgauge/internal/report"
	"github.com/spf13/cobra"
)

var flagFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [report-file]",
		Short: "Summarize an evaluation report by metaprompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			reportPath := cfg.Report.Path
			if len(args) > 0 {
				reportPath = args[0]
			}
			return report.Generate(reportPath, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}
