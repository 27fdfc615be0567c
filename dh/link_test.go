package dh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhkin/dh"
	"github.com/katalvlaran/dhkin/matrix"
	"github.com/katalvlaran/dhkin/rotation"
)

func TestLink_ZeroValue(t *testing.T) {
	t.Parallel()

	var l dh.Link
	require.Equal(t, dh.NewLink(0, 0, 0, 0), l)
	require.Equal(t, matrix.Identity4(), l.Transform(0))
}

func TestLink_TransformStoresTheta(t *testing.T) {
	t.Parallel()

	l := dh.NewLink(0.5, 2, 3, 0.25)
	_ = l.Transform(1.25)
	theta, d, a, alpha := l.Params()
	require.Equal(t, 1.25, theta)
	require.Equal(t, 1.25, l.Theta())
	require.Equal(t, 2.0, d)
	require.Equal(t, 2.0, l.Offset())
	require.Equal(t, 3.0, a)
	require.Equal(t, 3.0, l.Length())
	require.Equal(t, 0.25, alpha)
	require.Equal(t, 0.25, l.Twist())
}

func TestLink_TransformMatchesScrewProduct(t *testing.T) {
	t.Parallel()

	// T = Rz(θ) · Tz(d) · Tx(a) · Rx(α)
	const theta, d, a, alpha = 0.8, 0.3, 1.7, -1.1
	want := rotation.Trotz(theta).
		Mul(rotation.Transl(0, 0, d)).
		Mul(rotation.Transl(a, 0, 0)).
		Mul(rotation.Trotx(alpha))

	l := dh.NewLink(0, d, a, alpha)
	assertMat4Close(t, want, l.Transform(theta))
}

func TestLink_TransformEntries(t *testing.T) {
	t.Parallel()

	l := dh.NewLink(0, 4, 2, math.Pi/2)
	m := l.Transform(math.Pi / 2)

	require.InDelta(t, 0, m.At(0, 3), tol)
	require.InDelta(t, 2, m.At(1, 3), tol)
	require.Equal(t, 4.0, m.At(2, 3))
	require.InDelta(t, 1, m.At(2, 1), tol)
	require.InDelta(t, 0, m.At(2, 2), tol)
	require.Equal(t, []float64{0, 0, 0, 1}, m.Slice()[12:])
}

func TestLink_String(t *testing.T) {
	t.Parallel()

	l := dh.NewLink(3, 0.5, 1, -2)
	require.Equal(t, "theta = q  d = 0.5  a = 1  alpha = -2", l.String())
}
