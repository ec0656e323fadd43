package cmd

import (
	"fmt"
	"os"

	"github.com/softmetal/promptgauge/internal/collect"
	"github.com/softmetal/promptgauge/internal/config"
	"github.com/softmetal/promptgauge/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagResults string
	flagOut     string
)

func newCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Score result files and write the evaluation report",
		RunE:  runCollect,
	}
	cmd.Flags().StringVar(&flagResults, "results", "", "results directory (default from config)")
	cmd.Flags().StringVar(&flagOut, "out", "", "report output path (default from config)")
	return cmd
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	resultsDir := cfg.Results.Dir
	if flagResults != "" {
		resultsDir = flagResults
	}
	reportPath := cfg.Report.Path
	if flagOut != "" {
		reportPath = flagOut
	}

	metrics, err := collect.Run(resultsDir, reportPath)
	if err != nil {
		return err
	}
	fmt.Printf("Scored %d result(s), report written to %s\n", len(metrics), reportPath)

	if len(metrics) == 0 {
		return nil
	}
	fmt.Println("\n--- Summary ---")
	return report.Generate(reportPath, "table", os.Stdout)
}
