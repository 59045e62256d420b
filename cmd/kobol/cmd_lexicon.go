package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kobol/cobol/tokenizer"
	"github.com/dhamidi/kobol/ebnflex"
)

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lexicon",
		Short:         "Inspect and check EBNF lexicons",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newLexiconCheckCmd())
	cmd.AddCommand(newLexiconDumpCmd())

	return cmd
}

func newLexiconCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify a lexicon and list its token kinds",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			g, err := ebnflex.ParseGrammar(filename, f, startProduction)
			if err != nil {
				printErrors(err)
				return err
			}

			for _, kind := range g.Kinds() {
				if len(tokenizer.KindTags(kind)) == 0 {
					fmt.Printf("%s (not a known kind, tokens will be untagged)\n", kind)
					continue
				}
				fmt.Println(kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", tokenizer.LexiconStart, "start production listing the token kinds")

	return cmd
}

func newLexiconDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the built-in lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(tokenizer.LexiconSource())
			return nil
		},
	}
}

// printErrors prints each error of the ebnf error list inside err on its
// own line.
func printErrors(err error) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		v := reflect.ValueOf(e)
		if v.Kind() == reflect.Slice {
			for i := 0; i < v.Len(); i++ {
				fmt.Println(v.Index(i).Interface())
			}
			return
		}
	}
	fmt.Println(err)
}
