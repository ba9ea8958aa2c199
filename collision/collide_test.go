package collision_test

import (
	"testing"

	"github.com/keremnymn/citygen/collision"
	"github.com/keremnymn/citygen/geomath"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) collision.Properties {
	return collision.Properties{Corners: [4]geomath.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}}
}

func TestRectRectOverlap(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(5, 5, 15, 15)

	v, ok := collision.RectRect(a, b)
	require.True(t, ok)
	require.Greater(t, geomath.Length(v), 0.0)

	bFar := rect(25, 5, 35, 15)
	_, ok = collision.RectRect(a, bFar)
	require.False(t, ok)
}

func TestRectRectSymmetric(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(5, 5, 15, 15)

	_, okAB := collision.RectRect(a, b)
	_, okBA := collision.RectRect(b, a)
	require.Equal(t, okAB, okBA)
}

func TestCollideDispatch(t *testing.T) {
	rectObj := collision.NewRect([4]geomath.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}, 1)
	lineObj := collision.NewLine(geomath.Point{X: 5, Y: -5}, geomath.Point{X: 5, Y: 5}, 2, 2)

	require.True(t, collision.Collide(rectObj, lineObj))
	require.True(t, collision.Collide(lineObj, rectObj))

	farLine := collision.NewLine(geomath.Point{X: 100, Y: -5}, geomath.Point{X: 100, Y: 5}, 2, 3)
	require.False(t, collision.Collide(rectObj, farLine))
}

func TestCollideRectCircleOrderNormalized(t *testing.T) {
	rectObj := collision.NewRect([4]geomath.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}, 1)
	circleObj := collision.NewCircle(geomath.Point{X: 5, Y: 5}, 1, 2)

	require.True(t, collision.Collide(rectObj, circleObj))
	require.True(t, collision.Collide(circleObj, rectObj))
}

func TestLimitsCaching(t *testing.T) {
	line := collision.NewLine(geomath.Point{X: 0, Y: 0}, geomath.Point{X: 10, Y: 0}, 6, 7)
	first := line.Limits()
	require.Equal(t, 10.0, first.Width)

	line.SetLineEndpoints(geomath.Point{X: 0, Y: 0}, geomath.Point{X: 20, Y: 0})
	second := line.Limits()
	require.Equal(t, 20.0, second.Width)
}

func TestSetIDPersistsToCachedLimits(t *testing.T) {
	line := collision.NewLine(geomath.Point{X: 0, Y: 0}, geomath.Point{X: 10, Y: 0}, 6, 1)
	_ = line.Limits()
	line.SetID(42)

	got := line.Limits()
	require.Equal(t, 42, got.ID)
}
