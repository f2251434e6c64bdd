package electron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvershinin/escat/internal/geom"
	"github.com/nvershinin/escat/internal/physics"
)

func TestNewNormalizesDirection(t *testing.T) {
	s := New(geom.Coordinate{}, 5, geom.Coordinate{Z: 0, Y: 0, X: 2})
	assert.InDelta(t, 1.0, geom.Norm(s.Direction), 1e-12)
}

func TestRecordPointShiftsPrevious(t *testing.T) {
	s := New(geom.Coordinate{Z: 1}, 5, geom.Coordinate{Z: -1})
	s.RecordPoint(geom.Coordinate{Z: 2})
	assert.Equal(t, geom.Coordinate{Z: 1}, s.Previous)
	assert.Equal(t, geom.Coordinate{Z: 2}, s.Point)
}

func TestProposeNextDoesNotMutate(t *testing.T) {
	s := New(geom.Coordinate{Z: 1}, 5, geom.Coordinate{Z: -1})
	next := s.ProposeNext(3)
	assert.Equal(t, geom.Coordinate{Z: -2}, next)
	assert.Equal(t, geom.Coordinate{Z: 1}, s.Point)
}

func TestUpdateDirectionStaysUnit(t *testing.T) {
	s := New(geom.Coordinate{}, 5, geom.Coordinate{Z: -1, Y: 0, X: 0})
	angles, err := physics.SampleScatteringAngles(0.02, 0.3, 0.7)
	if err != nil {
		t.Fatalf("unexpected physics invariant error: %v", err)
	}
	s.UpdateDirection(angles)
	assert.InDelta(t, 1.0, s.Direction.Z*s.Direction.Z+s.Direction.Y*s.Direction.Y+s.Direction.X*s.Direction.X, 1e-6)
	assert.False(t, math.IsNaN(s.Direction.Z))
}

func TestClampReportsExit(t *testing.T) {
	abs := geom.Coordinate{Z: 10, Y: 10, X: 10}
	_, exited := Clamp(geom.Coordinate{Z: 11, Y: 5, X: 5}, abs)
	assert.True(t, exited)
	_, exited = Clamp(geom.Coordinate{Z: 5, Y: 5, X: 5}, abs)
	assert.False(t, exited)
}
