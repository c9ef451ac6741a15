package geom_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/groute/geom"
	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	t.Parallel()

	pairs := []struct{ a, b geom.Direction }{
		{geom.East, geom.West},
		{geom.North, geom.South},
	}
	for _, p := range pairs {
		got, err := p.a.Opposite()
		require.NoError(t, err)
		require.Equal(t, p.b, got)

		back, err := got.Opposite()
		require.NoError(t, err)
		require.Equal(t, p.a, back)
	}
}

func TestDirectionOppositeInvalid(t *testing.T) {
	t.Parallel()

	_, err := geom.Direction(99).Opposite()
	require.Error(t, err)
	require.True(t, errors.Is(err, geom.ErrInvalidDirection))
}

func TestOrientationToDirection(t *testing.T) {
	t.Parallel()

	cases := map[geom.Orientation]geom.Direction{
		geom.Front: geom.North,
		geom.Back:  geom.South,
		geom.Left:  geom.East,
		geom.Right: geom.West,
	}
	for o, want := range cases {
		got, err := o.ToDirection()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestStepAndDirectionBetweenAreInverse(t *testing.T) {
	t.Parallel()

	origin := geom.Coordinate2D{X: 3, Y: 3}
	for _, d := range []geom.Direction{geom.East, geom.West, geom.North, geom.South} {
		next, err := origin.Step(d)
		require.NoError(t, err)

		back, err := geom.DirectionBetween(origin, next)
		require.NoError(t, err)
		require.Equal(t, d, back)
	}
}

func TestDirectionBetweenRejectsNonUnitStep(t *testing.T) {
	t.Parallel()

	_, err := geom.DirectionBetween(geom.Coordinate2D{X: 0, Y: 0}, geom.Coordinate2D{X: 2, Y: 0})
	require.Error(t, err)

	_, err = geom.DirectionBetween(geom.Coordinate2D{X: 0, Y: 0}, geom.Coordinate2D{X: 1, Y: 1})
	require.Error(t, err)
}

func TestManhattanDistances(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7, geom.ManhattanDist2D(geom.Coordinate2D{X: 0, Y: 0}, geom.Coordinate2D{X: 3, Y: 4}))
	require.Equal(t, 8, geom.ManhattanDist3D(geom.Coordinate3D{X: 0, Y: 0, Z: 0}, geom.Coordinate3D{X: 3, Y: 4, Z: 1}))
}

func TestCoordinate3DRoundTrip(t *testing.T) {
	t.Parallel()

	c2 := geom.Coordinate2D{X: 1, Y: 2}
	c3 := c2.WithZ(5)
	require.Equal(t, geom.Coordinate3D{X: 1, Y: 2, Z: 5}, c3)
	require.Equal(t, c2, c3.To2D())
}
