// Package stats computes the arithmetic-level descriptive statistics shown on
// the data tools (histogram, scatter plot). Values follow the forms' display
// conventions: population variance, floor-index quartiles, two decimals.
package stats

import (
	"math"
	"strconv"
	"strings"

	"github.com/elliotchance/pie/v2"
)

type Descriptive struct {
	Count    int
	Mean     float64
	Median   float64
	StdDev   float64
	Variance float64
	Min      float64
	Max      float64
	Range    float64
	Q1       float64
	Q3       float64
	IQR      float64
}

type Correlation struct {
	R         float64
	Strength  string
	Direction string
}

// ParsePoints reads newline-separated values; lines that do not parse as
// numbers are skipped.
func ParsePoints(raw string) []float64 {
	var values []float64

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			continue
		}

		values = append(values, value)
	}

	return values
}

// Describe returns the descriptive statistics for a dataset, or false when
// it is empty. The input slice is not modified.
func Describe(values []float64) (Descriptive, bool) {
	if len(values) == 0 {
		return Descriptive{}, false
	}

	sorted := pie.Sort(values)
	count := len(sorted)

	sum := 0.0
	for _, value := range sorted {
		sum += value
	}
	mean := sum / float64(count)

	var median float64
	if count%2 == 0 {
		median = (sorted[count/2-1] + sorted[count/2]) / 2
	} else {
		median = sorted[count/2]
	}

	variance := 0.0
	for _, value := range sorted {
		variance += (value - mean) * (value - mean)
	}
	variance /= float64(count)

	q1 := sorted[count/4]
	q3 := sorted[count*3/4]

	return Descriptive{
		Count:    count,
		Mean:     round2(mean),
		Median:   round2(median),
		StdDev:   round2(math.Sqrt(variance)),
		Variance: round2(variance),
		Min:      round2(sorted[0]),
		Max:      round2(sorted[count-1]),
		Range:    round2(sorted[count-1] - sorted[0]),
		Q1:       round2(q1),
		Q3:       round2(q3),
		IQR:      round2(q3 - q1),
	}, true
}

// PearsonR computes the correlation coefficient for paired samples; false
// when the pairing is invalid or degenerate.
func PearsonR(xs, ys []float64) (float64, bool) {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0, false
	}

	n := float64(len(xs))

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0, false
	}

	return cov / math.Sqrt(varX*varY), true
}

// Interpret maps a correlation coefficient to the strength and direction
// wording used on the scatter plot form: |r| < 0.3 weak, 0.3-0.7 moderate,
// above 0.7 strong.
func Interpret(r float64) Correlation {
	abs := math.Abs(r)

	strength := "weak"
	switch {
	case abs > 0.7:
		strength = "strong"
	case abs >= 0.3:
		strength = "moderate"
	}

	direction := "no correlation"
	switch {
	case r > 0:
		direction = "positive"
	case r < 0:
		direction = "negative"
	}

	return Correlation{
		R:         round2(r),
		Strength:  strength,
		Direction: direction,
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
