package core

import (
	"errors"
	"math"
)

// ErrEmptySet is returned when a statistic is requested over no values.
var ErrEmptySet = errors.New("core: empty evaluation set")

// Mean averages the values. An empty input is an error, not a NaN.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySet
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Std is the population standard deviation of the values.
func Std(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values))), nil
}

// Round4 rounds to four decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
