package rotation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dhkin/matrix"
)

// ErrUnknownOrder is returned for a rotation order other than OrderXYZ or OrderZYX.
var ErrUnknownOrder = errors.New("rotation: unknown rotation order")

// Order selects a composite rotation sequence. The numeric values are part
// of the external interface (command streams send 1 or 2).
type Order int

const (
	// OrderXYZ rotates about x, then y, then z (Trotxyz).
	OrderXYZ Order = 1

	// OrderZYX rotates about z, then y, then x (Trotzyx).
	OrderZYX Order = 2
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o == OrderXYZ || o == OrderZYX
}

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case OrderXYZ:
		return "XYZ"
	case OrderZYX:
		return "ZYX"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Trot builds the rotation-only transform for the given order. Angles are
// always passed as (x, y, z) regardless of order.
func Trot(order Order, thetaX, thetaY, thetaZ float64) (matrix.Mat4, error) {
	switch order {
	case OrderXYZ:
		return Trotxyz(thetaX, thetaY, thetaZ), nil
	case OrderZYX:
		return Trotzyx(thetaZ, thetaY, thetaX), nil
	default:
		return matrix.Mat4{}, fmt.Errorf("Trot(%d): %w", int(order), ErrUnknownOrder)
	}
}
