package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForElectronIsDeterministic(t *testing.T) {
	a := ForElectron(42, 7)
	b := ForElectron(42, 7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestForElectronVariesByIndex(t *testing.T) {
	a := ForElectron(42, 1)
	b := ForElectron(42, 2)
	assert.NotEqual(t, a.Float64(), b.Float64())
}

func TestUniformIsInRange(t *testing.T) {
	s := ForElectron(1, 1)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(-2, 3)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}
