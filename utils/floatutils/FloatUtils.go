// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		if value := values[i]; value > max {
			max = value
			indices = []int{i}
		} else if value == max {
			indices = append(indices, i)
		}
	}
	return
}

// AllEqual returns whether every value in a slice is exactly equal to v
func AllEqual(values []float64, v float64) bool {
	for _, value := range values {
		if value != v {
			return false
		}
	}
	return true
}

// Softmax computes softmax(beta * values) into dst and returns dst. The
// maximum is subtracted before exponentiating so that large values of
// beta do not overflow. If dst is nil, a new slice is allocated.
func Softmax(dst, values []float64, beta float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(values))
	}
	floats.ScaleTo(dst, beta, values)

	max := floats.Max(dst)
	for i := range dst {
		dst[i] = math.Exp(dst[i] - max)
	}
	floats.Scale(1/floats.Sum(dst), dst)

	return dst
}
