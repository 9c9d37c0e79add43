package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntBelow(t *testing.T) {
	assert.Equal(t, 0, IntBelow(ScriptedRNG(0.0), 10))
	assert.Equal(t, 5, IntBelow(ScriptedRNG(0.5), 10))
	assert.Equal(t, 9, IntBelow(ScriptedRNG(0.999), 10))
	assert.Equal(t, 9, IntBelow(ScriptedRNG(1.0), 10), "a draw of exactly 1.0 stays in range")
	assert.Equal(t, 0, IntBelow(ScriptedRNG(0.5), 0), "degenerate range")
}

func TestIntBetween(t *testing.T) {
	assert.Equal(t, 4, IntBetween(ScriptedRNG(0.0), 4, 9))
	assert.Equal(t, 9, IntBetween(ScriptedRNG(0.999), 4, 9))
	assert.Equal(t, 7, IntBetween(ScriptedRNG(0.5), 4, 9))
	assert.Equal(t, 5, IntBetween(ScriptedRNG(0.0), 5, 5), "single-value range")
	assert.Equal(t, 8, IntBetween(ScriptedRNG(0.0), 8, 3), "inverted range returns min")
}

func TestSeededRNG_Deterministic(t *testing.T) {
	a := SeededRNG(42)
	b := SeededRNG(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a(), b())
	}
}

func TestScriptedRNG_ReplaysAndPanics(t *testing.T) {
	rng := ScriptedRNG(0.1, 0.2)
	assert.Equal(t, 0.1, rng())
	assert.Equal(t, 0.2, rng())
	assert.Panics(t, func() { rng() })
}

func TestIntBelow_DistributionBounds(t *testing.T) {
	rng := SeededRNG(7)
	for i := 0; i < 10000; i++ {
		v := IntBelow(rng, 37)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 37)
	}
}
