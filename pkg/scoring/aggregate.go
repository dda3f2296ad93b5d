package scoring

// Aggregate reduces per-vertex pip totals to a single statistic.
// Every Aggregate returns 0 for an empty input.
type Aggregate func([]float64) float64

// Variance is the population variance.
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	result := 0.0
	for _, x := range xs {
		result += (x - mean) * (x - mean)
	}
	return result / float64(len(xs))
}

// Min returns the smallest value.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = min(m, x)
	}
	return m
}

// Max returns the largest value.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := xs[0]
	for _, x := range xs[1:] {
		m = max(m, x)
	}
	return m
}
