package dh_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhkin/dh"
	"github.com/katalvlaran/dhkin/matrix"
)

const tol = 1e-12

// planar2 is a two-link planar arm with unit links in the x-y plane.
func planar2() []dh.Link {
	return []dh.Link{
		dh.NewLink(0, 0, 1, 0),
		dh.NewLink(0, 0, 1, 0),
	}
}

// puma is a six-axis PUMA 560-style table (metres), with non-zero table θ.
func puma() []dh.Link {
	return []dh.Link{
		dh.NewLink(0.1, 0, 0, math.Pi/2),
		dh.NewLink(-0.2, 0, 0.4318, 0),
		dh.NewLink(0.3, 0.15005, 0.0203, -math.Pi/2),
		dh.NewLink(0.4, 0.4318, 0, math.Pi/2),
		dh.NewLink(-0.5, 0, 0, -math.Pi/2),
		dh.NewLink(0.6, 0, 0, 0),
	}
}

func mustChain(t *testing.T, links []dh.Link, opts ...dh.ChainOption) *dh.Chain {
	t.Helper()
	c, err := dh.NewChain(links, opts...)
	require.NoError(t, err)

	return c
}

// manualFK multiplies the link transforms base to tip on fresh link copies.
func manualFK(links []dh.Link, q []float64) matrix.Mat4 {
	cum := matrix.Identity4()
	for i := range links {
		l := links[i]
		cum = cum.Mul(l.Transform(q[i]))
	}

	return cum
}

func assertMat4Close(t *testing.T, want, got matrix.Mat4) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("transforms differ (-want +got):\n%s", diff)
	}
}
