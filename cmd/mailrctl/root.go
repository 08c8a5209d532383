package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mailrctl",
		Short:         "Offline tools for mailr domain lists and pricing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newValidateCmd(), newQuoteCmd(), newExportCmd())
	return cmd
}
