// SPDX-License-Identifier: MIT

package matrix

// White-box hooks for matrix_test.
var (
	ExportedOverlaps    = overlaps
	ExportedGaussJordan = gaussJordan
)
