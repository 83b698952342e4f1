// Package summary holds the fold shared by every dashboard summary.
// Summaries are computed from a snapshot on every call and never cached.
package summary

import "math"

// Fold reduces items into an accumulator, left to right.
func Fold[T, S any](items []T, init S, step func(S, T) S) S {
	acc := init
	for _, it := range items {
		acc = step(acc, it)
	}
	return acc
}

// Percent returns part/total*100, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
