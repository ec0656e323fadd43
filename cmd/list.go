package cmd

import (
	"fmt"

	"github.com/softmetal/promptgauge/internal/config"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured tasks and metaprompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Println("Tasks:")
			for _, t := range cfg.Tasks {
				fmt.Printf("  - %s: %s\n", t.Name, t.Description)
			}
			fmt.Println("\nMetaprompts:")
			for _, m := range cfg.Metaprompts {
				fmt.Printf("  - %s\n", m.Name)
			}
			return nil
		},
	}
}
