package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phnks/webfg-app-sub004/internal/errors"
	"github.com/phnks/webfg-app-sub004/internal/rules"
)

func TestDefaultRuleSet(t *testing.T) {
	rs := rules.Default()
	require.NoError(t, rs.Validate())

	assert.Equal(t, rules.FatigueRuleIgnore, rs.FatigueRule)
	assert.Equal(t, rules.DefaultMaxChainLength, rs.MaxChainLength)
	assert.Equal(t, rules.DieSize(20), rs.Catalog.Classify("dexterity"))
	assert.Equal(t, rules.DieSize(20), rs.Catalog.Classify("agility"))
	assert.Equal(t, rules.Static, rs.Catalog.Classify("ARMOUR"))
}

func TestDefaultBands(t *testing.T) {
	bands := rules.Default().Bands

	testCases := []struct {
		difficulty int
		expected   string
	}{
		{difficulty: -50, expected: "Very Easy"},
		{difficulty: -10, expected: "Very Easy"},
		{difficulty: -9, expected: "Easy"},
		{difficulty: 0, expected: "Moderate"},
		{difficulty: 2, expected: "Moderate"},
		{difficulty: 9, expected: "Hard"},
		{difficulty: 19, expected: "Very Hard"},
		{difficulty: 20, expected: "Extremely Hard"},
		{difficulty: 90, expected: "Extremely Hard"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, bands.Label(tc.difficulty), "difficulty %d", tc.difficulty)
	}
}

func TestParseAlternateRules(t *testing.T) {
	rs, err := rules.Parse([]byte(`
version: 1
fatigueRule: subtract
attributes:
  STRENGTH: d6
bands:
  - upTo: 0
    label: Fine
fallbackBand: Bad
`))
	require.NoError(t, err)

	assert.Equal(t, 1, rs.Version)
	assert.Equal(t, rules.FatigueRuleSubtract, rs.FatigueRule)
	assert.Equal(t, rules.DefaultMaxChainLength, rs.MaxChainLength)
	assert.Equal(t, rules.DieSize(6), rs.Catalog.Classify("strength"))
	assert.Equal(t, "Fine", rs.Bands.Label(-3))
	assert.Equal(t, "Bad", rs.Bands.Label(1))
}

func TestParseRejectsInvalidRules(t *testing.T) {
	testCases := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{
			name:   "not yaml",
			yaml:   "attributes: [",
			errMsg: "failed to parse rule set",
		},
		{
			name:   "bad die",
			yaml:   "attributes:\n  STRENGTH: d1\nfallbackBand: x\n",
			errMsg: "at least 2 faces",
		},
		{
			name:   "missing fallback band",
			yaml:   "attributes:\n  STRENGTH: d20\n",
			errMsg: "fallback band label is required",
		},
		{
			name:   "bands out of order",
			yaml:   "bands:\n  - upTo: 5\n    label: a\n  - upTo: 5\n    label: b\nfallbackBand: c\n",
			errMsg: "is not above",
		},
		{
			name:   "unknown fatigue rule",
			yaml:   "fatigueRule: halve\nfallbackBand: c\n",
			errMsg: "FatigueRule",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rs, err := rules.Parse([]byte(tc.yaml))
			assert.Error(t, err)
			assert.Nil(t, rs)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		rs, err := rules.Load("")
		require.NoError(t, err)
		assert.True(t, rs.Catalog.UsesDice("STRENGTH"))
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("attributes:\n  SPEED: d4\nfallbackBand: Any\n"), 0o600))

		rs, err := rules.Load(path)
		require.NoError(t, err)
		assert.Equal(t, rules.DieSize(4), rs.Catalog.Classify("speed"))
		assert.Equal(t, "Any", rs.Bands.Label(100))
	})

	t.Run("shipped default file", func(t *testing.T) {
		data, err := os.ReadFile("default_rules.yaml")
		require.NoError(t, err)
		assert.Contains(t, string(data), "WEBFG_RULES_PATH")

		rs, err := rules.Load("default_rules.yaml")
		require.NoError(t, err)
		assert.Equal(t, rules.Default(), rs)
	})

	t.Run("missing file", func(t *testing.T) {
		rs, err := rules.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
		assert.Nil(t, rs)
		assert.Contains(t, err.Error(), "failed to read rule set")
	})
}

func TestWithFatigueRuleLeavesOriginalUntouched(t *testing.T) {
	rs := rules.Default()
	legacy := rs.WithFatigueRule(rules.FatigueRuleSubtract)

	assert.Equal(t, rules.FatigueRuleIgnore, rs.FatigueRule)
	assert.Equal(t, rules.FatigueRuleSubtract, legacy.FatigueRule)
	assert.Same(t, rs.Catalog, legacy.Catalog)
}
