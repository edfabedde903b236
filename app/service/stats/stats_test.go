package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoints(t *testing.T) {
	values := ParsePoints("10\n 12.5 \nnot a number\n\n8")

	assert.Equal(t, []float64{10, 12.5, 8}, values)
}

func TestParsePointsEmpty(t *testing.T) {
	assert.Empty(t, ParsePoints(""))
	assert.Empty(t, ParsePoints("abc\ndef"))
}

func TestDescribe(t *testing.T) {
	desc, ok := Describe([]float64{4, 8, 6, 2, 10})
	require.True(t, ok)

	assert.Equal(t, 5, desc.Count)
	assert.Equal(t, 6.0, desc.Mean)
	assert.Equal(t, 6.0, desc.Median)
	assert.Equal(t, 2.0, desc.Min)
	assert.Equal(t, 10.0, desc.Max)
	assert.Equal(t, 8.0, desc.Range)

	// population variance of {2,4,6,8,10} is 8
	assert.Equal(t, 8.0, desc.Variance)
	assert.Equal(t, 2.83, desc.StdDev)

	// floor-index quartiles on the sorted slice
	assert.Equal(t, 4.0, desc.Q1)
	assert.Equal(t, 8.0, desc.Q3)
	assert.Equal(t, 4.0, desc.IQR)
}

func TestDescribeEvenCountMedian(t *testing.T) {
	desc, ok := Describe([]float64{1, 2, 3, 4})
	require.True(t, ok)

	assert.Equal(t, 2.5, desc.Median)
}

func TestDescribeDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}

	_, ok := Describe(values)
	require.True(t, ok)

	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestDescribeEmpty(t *testing.T) {
	_, ok := Describe(nil)
	assert.False(t, ok)
}

func TestPearsonRPerfectCorrelation(t *testing.T) {
	r, ok := PearsonR([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.True(t, ok)
	assert.InDelta(t, 1.0, r, 1e-9)

	r, ok = PearsonR([]float64{1, 2, 3}, []float64{6, 4, 2})
	require.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-9)
}

func TestPearsonRDegenerate(t *testing.T) {
	_, ok := PearsonR([]float64{1, 2}, []float64{5, 5})
	assert.False(t, ok, "zero variance in y")

	_, ok = PearsonR([]float64{1}, []float64{1})
	assert.False(t, ok, "too few points")

	_, ok = PearsonR([]float64{1, 2, 3}, []float64{1, 2})
	assert.False(t, ok, "length mismatch")
}

func TestInterpret(t *testing.T) {
	assert.Equal(t, Correlation{R: 0.9, Strength: "strong", Direction: "positive"}, Interpret(0.9))
	assert.Equal(t, Correlation{R: -0.5, Strength: "moderate", Direction: "negative"}, Interpret(-0.5))
	assert.Equal(t, Correlation{R: 0.1, Strength: "weak", Direction: "positive"}, Interpret(0.1))
	assert.Equal(t, Correlation{R: 0, Strength: "weak", Direction: "no correlation"}, Interpret(0))
}

func TestInterpretBoundaries(t *testing.T) {
	assert.Equal(t, "moderate", Interpret(0.3).Strength)
	assert.Equal(t, "moderate", Interpret(0.7).Strength)
	assert.Equal(t, "strong", Interpret(0.71).Strength)
	assert.Equal(t, "weak", Interpret(-0.29).Strength)
}
