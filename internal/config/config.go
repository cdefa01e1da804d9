package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pathoquiz/quizaudit/internal/audit"
	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the default config path.
const EnvPath = "QUIZAUDIT_CONFIG"

// Config is the on-disk configuration. Every field is optional; omitted
// fields keep their Default values.
type Config struct {
	// Workers is the number of questions audited concurrently. 1 keeps the
	// batch strictly sequential.
	Workers int `yaml:"workers"`

	Audit   AuditSettings   `yaml:"audit"`
	Lexicon LexiconSettings `yaml:"lexicon"`
	Log     LogSettings     `yaml:"log"`
}

// AuditSettings mirrors audit.Config.
type AuditSettings struct {
	MinStemWords        int     `yaml:"min_stem_words"`
	MaxStemWords        int     `yaml:"max_stem_words"`
	MinExplanationWords int     `yaml:"min_explanation_words"`
	MinOptions          int     `yaml:"min_options"`
	MaxOptions          int     `yaml:"max_options"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxDoseGrams        int64   `yaml:"max_dose_grams"`
	MaxDoseMilligrams   int64   `yaml:"max_dose_milligrams"`
	ResistanceCategory  string  `yaml:"resistance_category"`
}

// LexiconSettings extends the built-in phrase tables.
type LexiconSettings struct {
	// MinVersion is the oldest built-in lexicon these extensions were
	// written against, e.g. "v1.0.0".
	MinVersion string `yaml:"min_version"`

	// Extend appends phrases to named entries.
	Extend map[string][]string `yaml:"extend"`
}

// LogSettings selects the logger mode and level.
type LogSettings struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	ac := audit.DefaultConfig()
	return Config{
		Workers: 1,
		Audit: AuditSettings{
			MinStemWords:        ac.MinStemWords,
			MaxStemWords:        ac.MaxStemWords,
			MinExplanationWords: ac.MinExplanationWords,
			MinOptions:          ac.MinOptions,
			MaxOptions:          ac.MaxOptions,
			SimilarityThreshold: ac.SimilarityThreshold,
			MaxDoseGrams:        ac.MaxDoseGrams,
			MaxDoseMilligrams:   ac.MaxDoseMilligrams,
			ResistanceCategory:  ac.ResistanceCategory,
		},
		Log: LogSettings{Mode: "dev", Level: "warn"},
	}
}

// ResolvePath returns the config path to use: the flag value if set, then
// $QUIZAUDIT_CONFIG, else "" meaning built-in defaults.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

// Load reads the YAML file at path over the defaults and validates it.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AuditConfig converts the audit settings.
func (c Config) AuditConfig() audit.Config {
	return audit.Config{
		MinStemWords:        c.Audit.MinStemWords,
		MaxStemWords:        c.Audit.MaxStemWords,
		MinExplanationWords: c.Audit.MinExplanationWords,
		MinOptions:          c.Audit.MinOptions,
		MaxOptions:          c.Audit.MaxOptions,
		SimilarityThreshold: c.Audit.SimilarityThreshold,
		MaxDoseGrams:        c.Audit.MaxDoseGrams,
		MaxDoseMilligrams:   c.Audit.MaxDoseMilligrams,
		ResistanceCategory:  c.Audit.ResistanceCategory,
	}
}

// Ruleset returns the built-in lexicon with any configured extensions.
func (c Config) Ruleset() (*lexicon.Ruleset, error) {
	base := lexicon.Default()
	ok, err := base.Satisfies(c.Lexicon.MinVersion)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("config requires lexicon %s, built-in is %s", c.Lexicon.MinVersion, base.Version())
	}
	extra := make(map[lexicon.Name][]string, len(c.Lexicon.Extend))
	for name, phrases := range c.Lexicon.Extend {
		extra[lexicon.Name(name)] = phrases
	}
	return base.Extend(extra)
}
