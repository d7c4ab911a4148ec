package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vocabtool",
		Short:        "Maintain the Parlo vocabulary catalog",
		SilenceUsage: true,
	}

	cmd.AddCommand(lintCmd())
	cmd.AddCommand(convertCmd())

	return cmd
}
