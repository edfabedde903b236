package forms

import (
	"testing"
	"time"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()

	svc, err := New(do.New())
	require.NoError(t, err)

	return svc
}

func TestApplyMergesAndStamps(t *testing.T) {
	svc := newService(t)

	svc.Apply("a3", map[string]string{"projectTitle": "Reduce Wait Time"})
	svc.Apply("a3", map[string]string{"problemOwner": "Sarah"})

	form := svc.Snapshot("a3")
	assert.Equal(t, "Reduce Wait Time", form.Fields["projectTitle"])
	assert.Equal(t, "Sarah", form.Fields["problemOwner"])
	assert.Equal(t, time.Now().Format("2006-01-02"), form.LastUpdated)
}

func TestApplyOverwritesExistingValue(t *testing.T) {
	svc := newService(t)

	svc.Apply("a3", map[string]string{"projectTitle": "first"})
	svc.Apply("a3", map[string]string{"projectTitle": "second"})

	assert.Equal(t, "second", svc.Snapshot("a3").Fields["projectTitle"])
}

func TestApplyEmptyPartialIsIgnored(t *testing.T) {
	svc := newService(t)

	svc.Apply("a3", map[string]string{})

	form := svc.Snapshot("a3")
	assert.Empty(t, form.Fields)
	assert.Empty(t, form.LastUpdated)
}

func TestToolIDCaseInsensitive(t *testing.T) {
	svc := newService(t)

	svc.Apply("A3", map[string]string{"projectTitle": "x"})

	assert.Equal(t, "x", svc.Snapshot("a3").Fields["projectTitle"])
}

func TestSnapshotIsACopy(t *testing.T) {
	svc := newService(t)
	svc.Apply("a3", map[string]string{"projectTitle": "x"})

	form := svc.Snapshot("a3")
	form.Fields["projectTitle"] = "mutated"

	assert.Equal(t, "x", svc.Snapshot("a3").Fields["projectTitle"])
}

func TestSnapshotUnknownTool(t *testing.T) {
	svc := newService(t)

	form := svc.Snapshot("never-touched")
	assert.NotNil(t, form.Fields)
	assert.Empty(t, form.Fields)
}

func TestCompletion(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, 0, svc.Completion("finy"))

	svc.Apply("finy", map[string]string{
		"projectTitle": "Automation",
		"baseline":     "60 min",
		"target":       "45 min",
	})
	assert.Equal(t, 50, svc.Completion("finy"))

	svc.Apply("finy", map[string]string{
		"timeframe": "6 months",
		"cost":      "$50,000",
		"savings":   "$200,000",
	})
	assert.Equal(t, 100, svc.Completion("finy"))
}

func TestCompletionRoundsToNearest(t *testing.T) {
	svc := newService(t)

	// 5 of 12 a3 fields = 41.67%, shown as 42
	svc.Apply("a3", map[string]string{
		"projectTitle":     "a",
		"problemOwner":     "b",
		"teamMembers":      "c",
		"background":       "d",
		"problemStatement": "e",
	})

	assert.Equal(t, 42, svc.Completion("a3"))
}

func TestCompletionIgnoresBlankValues(t *testing.T) {
	svc := newService(t)

	svc.SetField("finy", "baseline", "   ")

	assert.Equal(t, 0, svc.Completion("finy"))
}

func TestCompletionToolWithoutQuestions(t *testing.T) {
	svc := newService(t)

	svc.SetField("sipoc", "anything", "value")

	assert.Equal(t, 0, svc.Completion("sipoc"))
}
