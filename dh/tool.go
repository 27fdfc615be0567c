package dh

import (
	"github.com/katalvlaran/dhkin/matrix"
)

// ToolTransform returns the end link → tool tip transform.
func (c *Chain) ToolTransform() matrix.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.tool
}

// ToolInverse returns the cached inverse of ToolTransform, for use by
// inverse-kinematics callers that need the wrist pose.
func (c *Chain) ToolInverse() matrix.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.toolInv
}

// ToolOffset returns the current tool z-offset.
func (c *Chain) ToolOffset() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.zOffset
}

// UpdateToolInverse recomputes the tool inverse from the tool transform.
// If the tool is singular it returns matrix.ErrSingular and keeps the
// previous inverse.
func (c *Chain) UpdateToolInverse() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	inv, err := invertTransform(c.tool)
	if err != nil {
		return chainErrorf(opUpdateToolInverse, err)
	}
	c.toolInv = inv

	return nil
}

// SetToolOffset moves the tool tip along the end link's z-axis so that the
// z-offset becomes z. Any dz set by SetToolTransform is preserved. The tip z
// is always written as dz+z, so the result does not depend on earlier offsets.
func (c *Chain) SetToolOffset(z float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cand := c.tool
	cand[11] = c.toolDz + z

	return c.commitToolLocked(opSetToolOffset, cand, c.toolDz, z)
}

// SetToolTransform sets the tool tip position to (dx, dy, dz+z) and the
// z-offset to z. The tool rotation is untouched.
func (c *Chain) SetToolTransform(dx, dy, dz, z float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cand := c.tool
	cand[3] = dx
	cand[7] = dy
	cand[11] = dz + z
	cand[15] = 1

	return c.commitToolLocked(opSetToolTransform, cand, dz, z)
}

// ResetToolTransform moves the tool tip back onto the end link origin and
// clears the z-offset.
func (c *Chain) ResetToolTransform() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cand := c.tool
	cand[3], cand[7], cand[11] = 0, 0, 0
	cand[15] = 1

	return c.commitToolLocked(opResetToolTransform, cand, 0, 0)
}

// commitToolLocked installs a candidate tool only if it inverts; on failure
// the chain is left exactly as it was.
// Caller must hold the write lock.
func (c *Chain) commitToolLocked(op string, cand matrix.Mat4, dz, zOffset float64) error {
	inv, err := invertTransform(cand)
	if err != nil {
		return chainErrorf(op, err)
	}

	c.tool = cand
	c.toolInv = inv
	c.toolDz = dz
	c.zOffset = zOffset
	c.refreshLocked()

	return nil
}

// invertTransform returns tm⁻¹ using the general Gauss-Jordan kernel.
func invertTransform(tm matrix.Mat4) (matrix.Mat4, error) {
	if err := matrix.Invert(tm[:], 4); err != nil {
		return matrix.Mat4{}, err
	}

	return tm, nil
}
