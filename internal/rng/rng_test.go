package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SeedPolicy(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
	assert.Equal(t, int64(7), Resolve(7))
	assert.NotZero(t, Resolve(0))
}

func TestDerive(t *testing.T) {
	assert.Equal(t, Derive(42, 3), Derive(42, 3))
	// Parent and stream must not cancel out.
	assert.NotEqual(t, Derive(-1, 1), Derive(-2, 2))
	assert.NotEqual(t, Derive(1, 0), Derive(0, 1))

	seen := make(map[int64]bool)
	for parent := int64(-2); parent <= 2; parent++ {
		for stream := uint64(0); stream < 50; stream++ {
			s := Derive(parent, stream)
			assert.NotZero(t, s)
			assert.False(t, seen[s], "collision at parent=%d stream=%d", parent, stream)
			seen[s] = true
		}
	}
}
