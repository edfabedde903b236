package extract

import (
	"testing"

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

func TestExtractSingleField(t *testing.T) {
	svc := newService(t)

	extracted := svc.Extract("The problem owner is Sarah Johnson", "a3")

	assert.Equal(t, "Sarah Johnson", extracted["problemOwner"])
}

func TestExtractMultipleFieldsFromOneUtterance(t *testing.T) {
	svc := newService(t)

	extracted := svc.Extract(
		"My project title is Reduce Wait Time. The problem owner is Sarah. Our baseline timeframe is 6 months",
		"a3")

	assert.Equal(t, "Reduce Wait Time", extracted["projectTitle"])
	assert.Equal(t, "Sarah", extracted["problemOwner"])
}

func TestExtractFinyFields(t *testing.T) {
	svc := newService(t)

	extracted := svc.Extract("The cost is $50,000. Annual savings: $200,000", "finy")

	assert.Equal(t, "$50,000", extracted["cost"])
	assert.Equal(t, "$200,000", extracted["savings"])
}

func TestExtractEmptyInput(t *testing.T) {
	svc := newService(t)

	assert.Empty(t, svc.Extract("", "a3"))
	assert.Empty(t, svc.Extract("nothing recognizable here at all", "a3"))
}

func TestExtractUnknownTool(t *testing.T) {
	svc := newService(t)

	assert.Empty(t, svc.Extract("project title: anything", "no-such-tool"))
}

func TestExtractToolWithoutPatterns(t *testing.T) {
	svc := newService(t)

	// topic-only tools have no extraction rules
	assert.Empty(t, svc.Extract("suppliers are Acme Corp", "sipoc"))
}

func TestExtractIsPure(t *testing.T) {
	svc := newService(t)
	text := "The goal is 15% waste reduction. Team members: Alice and Bob"

	first := svc.Extract(text, "a3")
	second := svc.Extract(text, "a3")

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestExtractOverlappingLabelsAllFire(t *testing.T) {
	svc := newService(t)

	// "target state" triggers both goalStatement ("target") and
	// targetStateDescription ("target state")
	extracted := svc.Extract("The target state is a fully automated intake line", "a3")

	assert.Contains(t, extracted, "goalStatement")
	assert.Contains(t, extracted, "targetStateDescription")
	assert.Equal(t, "a fully automated intake line", extracted["targetStateDescription"])
}
