// Package config holds the settings of a parse and loads them from files
// and the environment.
//
// Files are TOML or YAML, chosen by extension:
//
//	format = "free"
//	max-word-length = 60
//	queue-size = 128
//	extensions = [".cobol"]
//	lexicon = "dialect.ebnf"
//
// The environment variables KOBOL_FORMAT and KOBOL_MAX_WORD_LENGTH override
// file settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/kobol/cobol/grammar"
	"github.com/dhamidi/kobol/cobol/tokenizer"
)

var log = commonlog.GetLogger("kobol.config")

const (
	EnvFormat        = "KOBOL_FORMAT"
	EnvMaxWordLength = "KOBOL_MAX_WORD_LENGTH"

	DefaultQueueSize = 64
)

// DefaultExtensions are the file extensions of COBOL sources and
// copybooks.
var DefaultExtensions = []string{".CBL", ".COB", ".CPY", ".COPY"}

// Names are the file names Find looks for.
var Names = []string{"kobol.toml", ".kobol.toml", "kobol.yaml", "kobol.yml", ".kobol.yaml"}

type Settings struct {
	Format        tokenizer.Format
	MaxWordLength int
	QueueSize     int
	// Extensions are added to DefaultExtensions.
	Extensions []string
	// Lexicon is the path of a lexicon replacing the built-in one.
	Lexicon string
}

func Default() Settings {
	return Settings{
		Format:        tokenizer.Fixed,
		MaxWordLength: grammar.DefaultMaxWordLength,
		QueueSize:     DefaultQueueSize,
	}
}

// file is the layout of a settings file.
type file struct {
	Format        string   `toml:"format" yaml:"format"`
	MaxWordLength any      `toml:"max-word-length" yaml:"max-word-length"`
	QueueSize     any      `toml:"queue-size" yaml:"queue-size"`
	Extensions    []string `toml:"extensions" yaml:"extensions"`
	Lexicon       string   `toml:"lexicon" yaml:"lexicon"`
}

// Load reads settings from a TOML or YAML file. Settings the file leaves
// out keep their defaults. A relative lexicon path is taken relative to the
// file.
func Load(path string) (Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, &f); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &f); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return Settings{}, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}

	s := Default()
	if f.Format != "" {
		s.Format, err = tokenizer.ParseFormat(f.Format)
		if err != nil {
			return Settings{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	s.MaxWordLength = intSetting("max-word-length", f.MaxWordLength, grammar.DefaultMaxWordLength)
	s.QueueSize = intSetting("queue-size", f.QueueSize, DefaultQueueSize)
	s.Extensions = f.Extensions
	if f.Lexicon != "" && !filepath.IsAbs(f.Lexicon) {
		f.Lexicon = filepath.Join(filepath.Dir(path), f.Lexicon)
	}
	s.Lexicon = f.Lexicon
	s.normalize()

	log.Debugf("loaded %s: %+v", path, s)
	return s, nil
}

// Find looks for a settings file in dir and its parents.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ApplyEnv overrides settings from the environment, as seen through
// lookup (usually os.LookupEnv).
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFormat); ok && v != "" {
		format, err := tokenizer.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		s.Format = format
	}
	if v, ok := lookup(EnvMaxWordLength); ok {
		s.MaxWordLength = ParseMaxWordLength(v)
	}
	return nil
}

// ParseMaxWordLength parses a maximum word length setting. Values which
// are not numbers are reported and, like zero, select the default.
func ParseMaxWordLength(value string) int {
	return intSetting(EnvMaxWordLength, value, grammar.DefaultMaxWordLength)
}

// intSetting converts a numeric setting as decoded from a file or read from
// the environment. Anything which is not a whole number is reported and
// selects def, as do zero and negative numbers.
func intSetting(key string, value any, def int) int {
	var n int
	switch v := value.(type) {
	case nil:
		return def
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		n = int(v)
	case string:
		var err error
		if n, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			log.Warningf("value for %s is not a number: %q, using %d", key, v, def)
			return def
		}
	default:
		log.Warningf("value for %s is not a whole number: %v, using %d", key, v, def)
		return def
	}
	if n <= 0 {
		return def
	}
	return n
}

// AllExtensions returns DefaultExtensions followed by the configured ones,
// upper-cased and with a leading dot.
func (s Settings) AllExtensions() []string {
	all := append([]string(nil), DefaultExtensions...)
	for _, ext := range s.Extensions {
		ext = strings.ToUpper(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		all = append(all, ext)
	}
	return all
}

func (s *Settings) normalize() {
	if s.MaxWordLength <= 0 {
		s.MaxWordLength = grammar.DefaultMaxWordLength
	}
	if s.QueueSize <= 0 {
		s.QueueSize = DefaultQueueSize
	}
}
