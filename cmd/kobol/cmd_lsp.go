package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/kobol/lsp"
)

func newLSPCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.settings(cmd)
			if err != nil {
				return err
			}
			server := lsp.NewServer(version, settings)
			return server.RunStdio()
		},
	}
}
