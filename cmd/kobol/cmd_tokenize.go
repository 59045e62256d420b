package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kobol/cobol"
	"github.com/dhamidi/kobol/format"
)

func newTokenizeCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tokenize <file>",
		Short:        "Print the tokens of a COBOL source, one per line",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			settings, err := flags.settings(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open source: %w", err)
			}
			defer f.Close()

			tokens, tokErr := cobol.Tokenize(f, options(settings, filename)...)
			if err := format.NewLineEncoder(os.Stdout).Encode(tokens); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return tokErr
		},
	}

	return cmd
}
