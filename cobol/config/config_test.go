package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/kobol/cobol/grammar"
	"github.com/dhamidi/kobol/cobol/tokenizer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"kobol.toml", "format = \"free\"\nmax-word-length = 60\nqueue-size = 8\nextensions = [\"cobol\"]\nlexicon = \"my.ebnf\"\n"},
		{"kobol.yaml", "format: FREE\nmax-word-length: 60\nqueue-size: 8\nextensions: [cobol]\nlexicon: my.ebnf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeFile(t, dir, tt.name, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if s.Format != tokenizer.Free {
				t.Errorf("Format = %v, want free", s.Format)
			}
			if s.MaxWordLength != 60 || s.QueueSize != 8 {
				t.Errorf("MaxWordLength = %d, QueueSize = %d", s.MaxWordLength, s.QueueSize)
			}
			if s.Lexicon != filepath.Join(dir, "my.ebnf") {
				t.Errorf("Lexicon = %q", s.Lexicon)
			}
			exts := s.AllExtensions()
			if last := exts[len(exts)-1]; last != ".COBOL" {
				t.Errorf("last extension = %q, want .COBOL", last)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(writeFile(t, t.TempDir(), "kobol.toml", "max-word-length = 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Format != tokenizer.Fixed || s.MaxWordLength != grammar.DefaultMaxWordLength || s.QueueSize != DefaultQueueSize {
		t.Errorf("got %+v, want the defaults", s)
	}
}

func TestLoadNonNumericSettings(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"words.toml", "max-word-length = \"abc\"\nqueue-size = 2.5\n"},
		{"words.yaml", "max-word-length: abc\nqueue-size: [1]\n"},
		{"quoted.toml", "max-word-length = \" 40 \"\nqueue-size = \"x\"\n"},
	}
	want := map[string]int{"words.toml": 31, "words.yaml": 31, "quoted.toml": 40}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(writeFile(t, dir, tt.name, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if s.MaxWordLength != want[tt.name] {
				t.Errorf("MaxWordLength = %d, want %d", s.MaxWordLength, want[tt.name])
			}
			if s.QueueSize != DefaultQueueSize {
				t.Errorf("QueueSize = %d, want %d", s.QueueSize, DefaultQueueSize)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"bad.toml":   "format = \"columns\"\n",
		"bad.yaml":   "format: [\n",
		"kobol.json": "{}",
	} {
		if _, err := Load(writeFile(t, dir, name, content)); err == nil {
			t.Errorf("Load(%s) succeeded", name)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvFormat:        "free",
		EnvMaxWordLength: "abc",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	s := Default()
	s.MaxWordLength = 50
	if err := s.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if s.Format != tokenizer.Free {
		t.Errorf("Format = %v, want free", s.Format)
	}
	if s.MaxWordLength != grammar.DefaultMaxWordLength {
		t.Errorf("MaxWordLength = %d, want the default for a non-number", s.MaxWordLength)
	}

	env[EnvFormat] = "sideways"
	if err := s.ApplyEnv(lookup); err == nil || !strings.Contains(err.Error(), EnvFormat) {
		t.Errorf("ApplyEnv = %v, want an error naming %s", err, EnvFormat)
	}
}

func TestParseMaxWordLength(t *testing.T) {
	tests := map[string]int{"40": 40, " 12 ": 12, "0": 31, "-3": 31, "x": 31, "": 31}
	for in, want := range tests {
		if got := ParseMaxWordLength(in); got != want {
			t.Errorf("ParseMaxWordLength(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeFile(t, root, "kobol.yaml", "format: fixed\n")

	got, ok := Find(nested)
	if !ok || got != want {
		t.Errorf("Find = %q, %v; want %q", got, ok, want)
	}
}
