package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplexSource_DeterministicAndBounded(t *testing.T) {
	params := DefaultNoiseParams()
	params.Seed = 11

	a := NewSimplexSource(params)
	b := NewSimplexSource(params)

	for i := 0; i < 200; i++ {
		x := 0.37*float64(i) - 20
		z := -0.21*float64(i) + 5
		v := a.Noise2D(x, z)
		assert.Equal(t, v, b.Noise2D(x, z))
		assert.LessOrEqual(t, math.Abs(v), 1.0, "Значение в (%v, %v) вне [-1, 1]", x, z)
	}
	assert.Equal(t, params, a.Params())
}

func TestSimplexSource_ZeroOctavesIsFlat(t *testing.T) {
	params := DefaultNoiseParams()
	params.Octaves = 0
	src := NewSimplexSource(params)
	assert.Zero(t, src.Noise2D(1.5, -2.5))
}
