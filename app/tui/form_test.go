package tui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitDataValues(t *testing.T) {
	assert.Equal(t, []string{"1", "2.5", "3"}, splitDataValues(" 1 2.5; 3 "))
	assert.Empty(t, splitDataValues("   "))
}

func TestParsePairs(t *testing.T) {
	xs, ys := parsePairs("1, 2\nbad line\n3,4\n5, not-a-number")

	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}

func TestFormPanelWidth(t *testing.T) {
	assert.Equal(t, 32, formPanelWidth(60))
	assert.Equal(t, 40, formPanelWidth(120))
	assert.Equal(t, 48, formPanelWidth(400))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "long va…", truncate("long value here", 8))
}

func TestTruncateCutsOnRuneBoundaries(t *testing.T) {
	got := truncate("Verbesserung der Qualität über Zeiträume", 25)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Verbesserung der Qualitä…", got)

	got = truncate("改善プロジェクトの現状分析です", 8)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "改善プロジェク…", got)
}
