package dsp

import "math"

// Mean returns the arithmetic mean of x, or 0 for empty input.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// Std returns the population standard deviation of x (divides by N, not
// N-1). The classifier thresholds assume population semantics.
func Std(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	mean := Mean(x)
	var sum float64
	for _, v := range x {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(x)))
}

// MatrixMean returns the mean over every element of m.
func MatrixMean(m [][]float64) float64 {
	var sum float64
	var n int
	for _, row := range m {
		for _, v := range row {
			sum += v
		}
		n += len(row)
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MatrixStd returns the population standard deviation over every element
// of m.
func MatrixStd(m [][]float64) float64 {
	var n int
	for _, row := range m {
		n += len(row)
	}
	if n == 0 {
		return 0
	}
	mean := MatrixMean(m)
	var sum float64
	for _, row := range m {
		for _, v := range row {
			d := v - mean
			sum += d * d
		}
	}
	return math.Sqrt(sum / float64(n))
}
