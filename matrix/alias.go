// SPDX-License-Identifier: MIT

package matrix

import "unsafe"

// overlaps reports whether x and y share any element of backing storage.
// Same address-range test as crypto/internal/alias.AnyOverlap, for float64.
func overlaps(x, y []float64) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
