// internal/config/config.go
//
// Game-rules configuration: an optional YAML file plus environment
// overrides. The engine consumes values only; where the word list
// lives and how the file is found is decided here.
//
// Resolution order for each value: built-in default, then YAML file
// (WORDEL_CONFIG or ./wordel.yaml if present), then environment.

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/emacsmirror/wordel/internal/words"
)

// Config models the YAML rules file.
type Config struct {
	// BaseLength is the word length for round one of a marathon and
	// the default practice-round length.
	BaseLength int `yaml:"base_length"`

	// AttemptLimit is the starting attempt budget per round.
	AttemptLimit int `yaml:"attempt_limit"`

	// IllegalPattern rejects words containing a match. Empty keeps the
	// default (anything outside A-Z).
	IllegalPattern string `yaml:"illegal_pattern"`

	// WordsFile is a line-delimited backing word list.
	WordsFile string `yaml:"words_file"`

	// WordsDB is a SQLite database with a words(word TEXT) table.
	// Takes precedence over WordsFile when both are set.
	WordsDB string `yaml:"words_db"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{BaseLength: 5, AttemptLimit: 6}
}

// Load resolves the configuration. path overrides discovery; an empty
// path checks WORDEL_CONFIG and then ./wordel.yaml. A missing file is
// fine; a present but unreadable or invalid one is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("WORDEL_CONFIG")
	}
	explicit := path != ""
	if path == "" {
		path = "wordel.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is the common case.
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("WORDS_FILE"); v != "" {
		cfg.WordsFile = v
	}
	if v := os.Getenv("WORDS_DB"); v != "" {
		cfg.WordsDB = v
	}
	if v := os.Getenv("BASE_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("BASE_LENGTH: %w", err)
		}
		cfg.BaseLength = n
	}
	if v := os.Getenv("ATTEMPT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("ATTEMPT_LIMIT: %w", err)
		}
		cfg.AttemptLimit = n
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.BaseLength < 2 {
		return errors.New("base_length must be at least 2")
	}
	if c.AttemptLimit < 1 {
		return errors.New("attempt_limit must be at least 1")
	}
	if _, err := c.Illegal(); err != nil {
		return err
	}
	return nil
}

// Illegal compiles the illegal-character pattern, nil for the default.
func (c Config) Illegal() (*regexp.Regexp, error) {
	if c.IllegalPattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.IllegalPattern)
	if err != nil {
		return nil, fmt.Errorf("illegal_pattern: %w", err)
	}
	return re, nil
}

// Source picks the backing word list: SQLite, then file, then the
// embedded default dictionary.
func (c Config) Source() words.Source {
	if c.WordsDB != "" {
		return words.SQLite(c.WordsDB)
	}
	if c.WordsFile != "" {
		return words.File(c.WordsFile)
	}
	return words.Embedded()
}
