package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newPrintCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Compile one file and write the JSX to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := cfg.compiler().CompileFile(args[0], b)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
