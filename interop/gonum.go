package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dhkin/matrix"
)

// ToDense copies m into a new 4x4 gonum matrix.
func ToDense(m matrix.Mat4) *mat.Dense {
	return mat.NewDense(4, 4, m.Slice())
}

// FromDense copies a 4x4 gonum matrix into a Mat4.
// Returns matrix.ErrDimensionMismatch for any other shape.
func FromDense(d mat.Matrix) (matrix.Mat4, error) {
	r, c := d.Dims()
	if r != 4 || c != 4 {
		return matrix.Mat4{}, fmt.Errorf("interop: FromDense %dx%d: %w", r, c, matrix.ErrDimensionMismatch)
	}

	var out matrix.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = d.At(i, j)
		}
	}

	return out, nil
}

// DenseFromMatrix copies any matrix.Matrix into a gonum matrix of the same shape.
func DenseFromMatrix(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("interop: DenseFromMatrix: %w", err)
	}
	if d, ok := m.(*matrix.Dense); ok {
		return mat.NewDense(d.Rows(), d.Cols(), d.Data()), nil
	}

	r, c := m.Rows(), m.Cols()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("interop: DenseFromMatrix: %w", err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}
