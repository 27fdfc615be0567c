package dh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dhkin/matrix"
)

// Link is one row of a Denavit-Hartenberg table.
//
// θ is the joint variable of a revolute joint and is overwritten by every
// Transform call; d, a and α are fixed at construction. The zero value is a
// valid link with every parameter zero.
type Link struct {
	theta float64 // joint angle about z_{i-1} (rad), last value used
	d     float64 // offset along z_{i-1}
	a     float64 // length along x_i
	alpha float64 // twist about x_i (rad)
}

// NewLink returns a link with the given D-H parameters.
func NewLink(theta, d, a, alpha float64) Link {
	return Link{theta: theta, d: d, a: a, alpha: alpha}
}

// Transform stores q as the link's θ and returns the transform from frame
// i-1 to frame i:
//
//	[ cosθ  -sinθ·cosα   sinθ·sinα  a·cosθ ]
//	[ sinθ   cosθ·cosα  -cosθ·sinα  a·sinθ ]
//	[  0       sinα        cosα       d    ]
//	[  0        0           0         1    ]
func (l *Link) Transform(q float64) matrix.Mat4 {
	l.theta = q
	st, ct := math.Sincos(l.theta)
	sa, ca := math.Sincos(l.alpha)

	return matrix.Mat4{
		ct, -st * ca, st * sa, l.a * ct,
		st, ct * ca, -ct * sa, l.a * st,
		0, sa, ca, l.d,
		0, 0, 0, 1,
	}
}

// Length returns a.
func (l Link) Length() float64 { return l.a }

// Theta returns the most recent θ.
func (l Link) Theta() float64 { return l.theta }

// Offset returns d.
func (l Link) Offset() float64 { return l.d }

// Twist returns α.
func (l Link) Twist() float64 { return l.alpha }

// Params returns (θ, d, a, α).
func (l Link) Params() (theta, d, a, alpha float64) {
	return l.theta, l.d, l.a, l.alpha
}

// String implements fmt.Stringer. θ is shown as "q" because it is the joint
// variable rather than a fixed parameter.
func (l Link) String() string {
	return fmt.Sprintf("theta = q  d = %g  a = %g  alpha = %g", l.d, l.a, l.alpha)
}
