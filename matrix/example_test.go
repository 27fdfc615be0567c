package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dhkin/matrix"
)

// ExampleInvert inverts a homogeneous translation in place.
func ExampleInvert() {
	tm := []float64{
		1, 0, 0, 2,
		0, 1, 0, 3,
		0, 0, 1, 4,
		0, 0, 0, 1,
	}
	if err := matrix.Invert(tm, 4); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tm[3], tm[7], tm[11])

	// Output:
	// -2 -3 -4
}

// ExampleInvert_singular shows that a failed inversion leaves the input as it was.
func ExampleInvert_singular() {
	a := []float64{
		1, 2,
		2, 4,
	}
	err := matrix.Invert(a, 2)
	fmt.Println(errors.Is(err, matrix.ErrSingular), a)

	// Output:
	// true [1 2 2 4]
}

// ExampleMultiply composes two 2×2 matrices.
func ExampleMultiply() {
	a := []float64{1, 2, 3, 4}
	b := []float64{0, 1, 1, 0}
	c := make([]float64, 4)
	_ = matrix.Multiply(a, b, 2, 2, 2, c)
	fmt.Println(c)

	// Output:
	// [2 1 4 3]
}
