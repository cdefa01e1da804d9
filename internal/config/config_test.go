package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pathoquiz/quizaudit/internal/audit"
	"github.com/pathoquiz/quizaudit/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesAuditDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, audit.DefaultConfig(), cfg.AuditConfig())
	assert.Equal(t, 1, cfg.Workers)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	p := filepath.Join(t.TempDir(), "quizaudit.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
workers: 4
audit:
  min_explanation_words: 10
  similarity_threshold: 0.5
lexicon:
  min_version: v1.0.0
  extend:
    ambiguous_markers: [perhaps]
log:
  level: debug
`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 10, cfg.Audit.MinExplanationWords)
	assert.Equal(t, 0.5, cfg.Audit.SimilarityThreshold)
	assert.Equal(t, 10, cfg.Audit.MinStemWords, "unset field keeps default")
	assert.Equal(t, "dev", cfg.Log.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)

	rs, err := cfg.Ruleset()
	require.NoError(t, err)
	assert.Contains(t, rs.Phrases(lexicon.AmbiguousMarkers), "perhaps")
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("audit:\n  min_words: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_words")
}

func TestParse_ValidationIssues(t *testing.T) {
	_, err := Parse([]byte(`
workers: 0
audit:
  min_stem_words: 20
  max_stem_words: 5
  similarity_threshold: 1.5
  resistance_category: "  "
lexicon:
  min_version: latest
  extend:
    not_a_table: [x]
log:
  mode: verbose
  level: loud
`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	fields := make([]string, 0, len(ve.Issues))
	for _, is := range ve.Issues {
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{
		"workers",
		"audit.max_stem_words",
		"audit.similarity_threshold",
		"audit.resistance_category",
		"lexicon.min_version",
		"lexicon.extend.not_a_table",
		"log.mode",
		"log.level",
	}, fields)
}

func TestRuleset_VersionTooNew(t *testing.T) {
	cfg := Default()
	cfg.Lexicon.MinVersion = "v9.0.0"
	_, err := cfg.Ruleset()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v9.0.0")
}

func TestRuleset_NoExtensionsReturnsBuiltin(t *testing.T) {
	rs, err := Default().Ruleset()
	require.NoError(t, err)
	assert.Same(t, lexicon.Default(), rs)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "/etc/quizaudit.yaml")
	assert.Equal(t, "/tmp/flag.yaml", ResolvePath("/tmp/flag.yaml"))
	assert.Equal(t, "/etc/quizaudit.yaml", ResolvePath(""))

	t.Setenv(EnvPath, "")
	assert.Equal(t, "", ResolvePath(""))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
