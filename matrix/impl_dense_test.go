package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhkin/matrix"
)

func TestNewDense_DefaultZeroAndErrors(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for _, v := range m.Data() {
		require.Zero(t, v)
	}

	_, err := matrix.NewDense(0, 3)
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 5))
	require.Equal(t, 5.0, MustAt(t, m, 1, 0))

	_, err := m.At(2, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	AssertErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_CloneAndDataAreCopies(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4}
	m := NewFilledDense(t, 2, 2, src)
	src[0] = 99 // constructor copied
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	d := m.Data()
	d[1] = 42
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 0.5, -2, 3})
	require.Equal(t, "[1, 0.5]\n[-2, 3]\n", m.String())
}

func TestMulTInverseOf_FallbackMatchesDense(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 3, 3, WellConditioned(t, 3, 5))
	b := NewFilledDense(t, 3, 2, RandBuf(3, 2, 6))

	p1, err := matrix.Mul(a, b)
	require.NoError(t, err)
	p2, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, p1.Data(), p2.Data())

	tr, err := matrix.T(hide{b})
	require.NoError(t, err)
	require.Equal(t, 2, tr.Rows())
	require.Equal(t, 3, tr.Cols())
	require.Equal(t, MustAt(t, b, 2, 1), MustAt(t, tr, 1, 2))

	inv1, err := matrix.InverseOf(a)
	require.NoError(t, err)
	inv2, err := matrix.InverseOf(hide{a})
	require.NoError(t, err)
	require.Equal(t, inv1.Data(), inv2.Data())

	id, err := matrix.Mul(a, inv1)
	require.NoError(t, err)
	AssertClose(t, matrix.Identity(3), id.Data(), 1e-12)
}

func TestMulTInverseOf_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(nil, MustDense(t, 2, 2))
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.T(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.InverseOf(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.InverseOf(MustDense(t, 2, 2))
	AssertErrorIs(t, err, matrix.ErrSingular)
}
