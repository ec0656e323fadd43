package cmd

import (
	"fmt"

	"github.com/softmetal/promptgauge/internal/config"
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <config-file> <tasks|metaprompts>",
		Short: "Print selected fields from a config file",
		Long:  "Print one line per entry: the name of each task, or the prompt of each metaprompt. Unknown query names print nothing.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := config.Query(args[0], args[1])
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Println(v)
			}
			return nil
		},
	}
}
