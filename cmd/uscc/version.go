package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const usccVersion = "0.1.0-dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the uscc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "uscc version %s\n", usccVersion)
			return err
		},
	}
}
