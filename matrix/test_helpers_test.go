// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/dhkin/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based path in the facades.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return d
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandBuf returns r*c deterministic pseudo-random values in [-1, 1).
func RandBuf(r, c int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}

	return buf
}

// WellConditioned returns MᵀM + I for a random M (symmetric positive definite).
func WellConditioned(t *testing.T, n int, seed int64) []float64 {
	t.Helper()
	m := RandBuf(n, n, seed)
	mt := make([]float64, n*n)
	if err := matrix.Transpose(m, n, n, mt); err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	out := make([]float64, n*n)
	if err := matrix.Multiply(mt, m, n, n, n, out); err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	if err := matrix.Add(out, matrix.Identity(n), n, n, out); err != nil {
		t.Fatalf("Add: %v", err)
	}

	return out
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// AssertClose fails when any element of got differs from want by more than tol.
func AssertClose(t *testing.T, want, got []float64, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("buffers differ (-want +got):\n%s", diff)
	}
}
