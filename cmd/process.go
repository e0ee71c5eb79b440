package main

import (
	"fmt"
	"os"

	"github.com/jerry-enebeli/txflow"
	"github.com/spf13/cobra"
)

func processCommands(b *txflowInstance) *cobra.Command {
	processCmd := &cobra.Command{
		Use:   "process [input file]",
		Short: "process a transaction stream and print the account report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := b.cnf.InputFile
			if len(args) > 0 {
				input = args[0]
			}

			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("error opening input: %w", err)
			}
			defer f.Close()

			flow := txflow.NewTxflow()
			if err := flow.ProcessStream(f); err != nil {
				return err
			}
			return flow.WriteReport(cmd.OutOrStdout())
		},
	}

	return processCmd
}
