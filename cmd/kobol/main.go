package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/kobol/cobol"
	"github.com/dhamidi/kobol/cobol/config"
	"github.com/dhamidi/kobol/cobol/tokenizer"
)

const version = "0.1.0"

var log = commonlog.GetLogger("kobol")

// globalFlags are shared by all commands.
type globalFlags struct {
	verbose       int
	logFile       string
	configPath    string
	sourceFormat  string
	maxWordLength int
	lexicon       string
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "kobol",
		Short:   "A COBOL tokenizer and parser",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if flags.logFile != "" {
				path = &flags.logFile
			}
			commonlog.Configure(flags.verbose, path)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbose, "verbose", "v", "log more, repeat for debug output")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVarP(&flags.configPath, "config", "c", "", "settings file (default: kobol.toml or kobol.yaml in the current directory or a parent)")
	pf.StringVar(&flags.sourceFormat, "source-format", "", "source format: fixed or free")
	pf.IntVar(&flags.maxWordLength, "max-word-length", 0, "maximum length of a user-defined word")
	pf.StringVar(&flags.lexicon, "lexicon", "", "EBNF lexicon replacing the built-in one")

	rootCmd.AddCommand(newTokenizeCmd(&flags))
	rootCmd.AddCommand(newParseCmd(&flags))
	rootCmd.AddCommand(newLexiconCmd())
	rootCmd.AddCommand(newLSPCmd(&flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// settings resolves the settings file, the environment and the command
// line flags, in that order.
func (f *globalFlags) settings(cmd *cobra.Command) (config.Settings, error) {
	path := f.configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = config.Find(wd)
		}
	}

	s := config.Default()
	if path != "" {
		var err error
		if s, err = config.Load(path); err != nil {
			return config.Settings{}, err
		}
		log.Infof("using settings from %s", path)
	}

	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("source-format") {
		format, err := tokenizer.ParseFormat(f.sourceFormat)
		if err != nil {
			return config.Settings{}, err
		}
		s.Format = format
	}
	if cmd.Flags().Changed("max-word-length") {
		s.MaxWordLength = f.maxWordLength
		if s.MaxWordLength <= 0 {
			s.MaxWordLength = config.Default().MaxWordLength
		}
	}
	if cmd.Flags().Changed("lexicon") {
		s.Lexicon = f.lexicon
	}
	return s, nil
}

// options turns settings into parse options for the named file.
func options(s config.Settings, file string) []cobol.Option {
	return []cobol.Option{cobol.WithSettings(s), cobol.WithFile(file)}
}
