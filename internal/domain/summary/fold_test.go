package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	sum := Fold([]int{1, 2, 3, 4}, 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, 10, sum)

	empty := Fold([]string(nil), "seed", func(acc, v string) string { return acc + v })
	assert.Equal(t, "seed", empty)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(0, 0))
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 100.0, Percent(3, 3))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 66.7, Round(200.0/3.0, 1))
	assert.Equal(t, 12.35, Round(12.345001, 2))
	assert.Equal(t, 3.0, Round(3, 2))
}
