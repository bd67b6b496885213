package wpi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func pt(x float64) PointObserved {
	return PointObserved{Point: Point{X: x, Y: x}}
}

func TestAccumulator_Transitions(t *testing.T) {
	a := NewAccumulator(IdlePointsKeep)
	require.Equal(t, Idle, a.State())

	_, ok := a.Handle(StrokeStart{})
	require.False(t, ok)
	require.Equal(t, Collecting, a.State())

	a.Handle(pt(1))
	a.Handle(pt(2))
	require.Equal(t, 2, a.Pending())

	s, ok := a.Handle(StrokeEnd{})
	require.True(t, ok)
	require.Equal(t, []Point{{1, 1}, {2, 2}}, s.Points)
	require.Equal(t, Idle, a.State())
	require.Zero(t, a.Pending())
}

func TestAccumulator_StartDiscardsBuffer(t *testing.T) {
	a := NewAccumulator(IdlePointsKeep)
	a.Handle(StrokeStart{})
	a.Handle(pt(1))
	a.Handle(StrokeStart{})
	a.Handle(pt(2))
	a.Handle(pt(3))

	s, ok := a.Handle(StrokeEnd{})
	require.True(t, ok)
	require.Equal(t, []Point{{2, 2}, {3, 3}}, s.Points)
}

func TestAccumulator_LayerResetsAndCounts(t *testing.T) {
	a := NewAccumulator(IdlePointsKeep)
	a.Handle(StrokeStart{})
	a.Handle(pt(1))
	a.Handle(StrokeLayer{Code: 2})
	require.Equal(t, Collecting, a.State())
	require.Zero(t, a.Pending())
	a.Handle(pt(2))

	s, ok := a.Handle(StrokeEnd{})
	require.True(t, ok)
	require.Equal(t, 1, s.Layer)
	require.Equal(t, []Point{{2, 2}}, s.Points)
}

func TestAccumulator_EndWhileIdleFlushesEmpty(t *testing.T) {
	a := NewAccumulator(IdlePointsKeep)
	s, ok := a.Handle(StrokeEnd{})
	require.True(t, ok)
	require.Empty(t, s.Points)
	require.Equal(t, Idle, a.State())
}

func TestAccumulator_IdlePoints(t *testing.T) {
	t.Run("keep appends regardless of state", func(t *testing.T) {
		a := NewAccumulator(IdlePointsKeep)
		a.Handle(pt(1))
		require.Equal(t, Idle, a.State())
		require.Equal(t, 1, a.Pending())

		s, ok := a.Handle(StrokeEnd{})
		require.True(t, ok)
		require.Equal(t, []Point{{1, 1}}, s.Points)
		require.Zero(t, a.Dropped())
	})

	t.Run("drop discards points outside a stroke", func(t *testing.T) {
		a := NewAccumulator(IdlePointsDrop)
		a.Handle(pt(1))
		require.Zero(t, a.Pending())
		require.Equal(t, 1, a.Dropped())

		a.Handle(StrokeStart{})
		a.Handle(pt(2))
		s, ok := a.Handle(StrokeEnd{})
		require.True(t, ok)
		require.Equal(t, []Point{{2, 2}}, s.Points)

		a.Handle(pt(3))
		require.Equal(t, 2, a.Dropped())
	})
}

func TestAccumulator_IgnoresSamples(t *testing.T) {
	a := NewAccumulator(IdlePointsKeep)
	a.Handle(StrokeStart{})
	for _, ev := range []Event{PressureObserved{Pressure: 9}, TiltObserved{X: 1, Y: 2}, Skipped{Descriptor: DescReserved197}} {
		_, ok := a.Handle(ev)
		require.False(t, ok)
	}
	require.Equal(t, Collecting, a.State())
	require.Zero(t, a.Pending())
}
