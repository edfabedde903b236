package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleMatch(t *testing.T) {
	rule := NewRule("problem statement", "problem is", "issue is")

	value, ok := rule.Match("The problem is high defect rates in assembly")
	require.True(t, ok)
	assert.Equal(t, "high defect rates in assembly", value)
}

func TestRuleMatchCaseInsensitive(t *testing.T) {
	rule := NewRule("project title")

	value, ok := rule.Match("PROJECT TITLE: Reduce Wait Times")
	require.True(t, ok)
	assert.Equal(t, "Reduce Wait Times", value)
}

func TestRuleMatchStopsAtPeriod(t *testing.T) {
	rule := NewRule("goal is")

	value, ok := rule.Match("Our goal is 15% waste. We start next week")
	require.True(t, ok)
	assert.Equal(t, "15% waste", value)
}

func TestRuleMatchOptionalColon(t *testing.T) {
	rule := NewRule("background")

	withColon, ok := rule.Match("Background: legacy process from 2019")
	require.True(t, ok)

	withoutColon, ok := rule.Match("Background legacy process from 2019")
	require.True(t, ok)

	assert.Equal(t, withColon, withoutColon)
}

func TestRuleMatchRegexpFragment(t *testing.T) {
	rule := NewRule("team members?")

	value, ok := rule.Match("Team member: Alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", value)

	value, ok = rule.Match("Team members: Alice, Bob and Carol")
	require.True(t, ok)
	assert.Equal(t, "Alice, Bob and Carol", value)
}

func TestRuleNoMatch(t *testing.T) {
	rule := NewRule("root cause")

	_, ok := rule.Match("we have not analyzed anything yet")
	assert.False(t, ok)
}

func TestRuleEmptyCaptureIsNoMatch(t *testing.T) {
	rule := NewRule("problem is")

	_, ok := rule.Match("the problem is.")
	assert.False(t, ok, "empty capture must not count as a match")

	_, ok = rule.Match("problem is   ")
	assert.False(t, ok)
}

func TestGetCaseInsensitive(t *testing.T) {
	assert.Equal(t, Get("a3").ID, Get("  A3 ").ID)
	assert.Equal(t, "a3", Get("A3").ID)
}

func TestGetUnknownToolIsZero(t *testing.T) {
	cfg := Get("definitely-not-a-tool")

	assert.Empty(t, cfg.Patterns)
	assert.Empty(t, cfg.Questions)
	assert.Equal(t, "definitely-not-a-tool", cfg.ID)
}

func TestToolsOrder(t *testing.T) {
	all := Tools()
	require.NotEmpty(t, all)

	assert.Equal(t, "a3", all[0].ID)
	for _, tool := range all {
		assert.NotEmpty(t, tool.ID)
		assert.NotEmpty(t, tool.Title)
	}
}

func TestA3Config(t *testing.T) {
	cfg := Get("a3")

	require.Len(t, cfg.Patterns, 12)
	require.Len(t, cfg.Questions, 12)

	// every question field has a pattern behind it
	for _, question := range cfg.Questions {
		_, ok := cfg.Patterns[question.Field]
		assert.True(t, ok, "no pattern for %s", question.Field)
	}

	assert.Equal(t, "projectTitle", cfg.Questions[0].Field)
}

func TestFinyConfig(t *testing.T) {
	cfg := Get("finy")

	require.Len(t, cfg.Patterns, 6)
	require.Len(t, cfg.Questions, 6)
	assert.Contains(t, cfg.Welcome, "FinY")
}

func TestWelcomeFallback(t *testing.T) {
	generic := Welcome("sipoc-unknown-variant")

	assert.Contains(t, generic, "Kii")
	assert.NotEmpty(t, Welcome("a3"))
	assert.NotEqual(t, generic, Welcome("a3"))
}

func TestHelpAndExampleFallbacks(t *testing.T) {
	assert.Contains(t, Help("checksheet"), "Checksheet")
	assert.Contains(t, strings.ToLower(Example("voc")), "extract")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "project title", Label("projectTitle"))
	assert.Equal(t, "goal", Label("goalStatement"))
	assert.Equal(t, "mysteryField", Label("mysteryField"))
}
