// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhkin/matrix"
)

func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	b := NewFilledDense(t, 3, 1, []float64{1, 0, -1})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 1, c.Cols())
	require.Equal(t, []float64{-2, -2}, c.Data())

	_, err = matrix.Mul(b, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestT_Shape(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matrix.T(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, 4.0, MustAt(t, at, 0, 1))

	att, err := matrix.T(at)
	require.NoError(t, err)
	require.Equal(t, a.Data(), att.Data())
}

func TestInverseOf_TransformRoundTrip(t *testing.T) {
	t.Parallel()

	tm := matrix.Mat4{
		0, -1, 0, 3,
		1, 0, 0, -2,
		0, 0, 1, 0.5,
		0, 0, 0, 1,
	}
	d := matrix.DenseOf(tm)
	inv, err := matrix.InverseOf(d)
	require.NoError(t, err)

	id, err := matrix.Mul(d, inv)
	require.NoError(t, err)
	AssertClose(t, matrix.Identity(4), id.Data(), 1e-12)

	// the input Dense is untouched
	require.Equal(t, tm.Slice(), d.Data())
}

func TestInverseOf_ForwardsOptions(t *testing.T) {
	t.Parallel()

	nearSingular := NewFilledDense(t, 2, 2, []float64{
		1, 1,
		1, 1 + 1e-12,
	})
	_, err := matrix.InverseOf(nearSingular)
	require.NoError(t, err)

	_, err = matrix.InverseOf(nearSingular, matrix.WithPivotTolerance(1e-9))
	AssertErrorIs(t, err, matrix.ErrSingular)
}

func TestGaussJordan_ReportsColumn(t *testing.T) {
	t.Parallel()

	w := []float64{
		1, 0, 0,
		0, 0, 0,
		0, 0, 1,
	}
	err := matrix.ExportedGaussJordan(w, 3, 0)
	AssertErrorIs(t, err, matrix.ErrSingular)
	require.Contains(t, err.Error(), "column 1")
}
