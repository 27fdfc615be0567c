package dh

import (
	"sync"

	"github.com/katalvlaran/dhkin/matrix"
	"github.com/katalvlaran/dhkin/rotation"
)

// Chain is a serial kinematic chain with a tool attached to its last link.
//
// mu guards every field below it. The cached pose invariants are
//
//	current == FK(q) · tool   (after any joint or tool mutator)
//	toolInv == tool⁻¹         (after any tool mutator)
type Chain struct {
	mu sync.RWMutex

	capacity int
	links    []Link
	q        []float64 // current joint vector (rad)

	current matrix.Mat4 // cached end-effector (or tool tip) pose
	tool    matrix.Mat4 // end link → tool tip
	toolInv matrix.Mat4
	toolDz  float64 // portion of tool[2][3] owned by SetToolTransform
	zOffset float64 // portion of tool[2][3] owned by SetToolOffset
}

// Pose is a consistent snapshot of a chain's joints and cached transform.
type Pose struct {
	Joints    []float64
	Transform matrix.Mat4
}

// NewChain builds a chain from a D-H table. links is copied.
//
// The initial joint vector is each link's table θ unless WithJointVector is
// given. The tool starts as the identity translated by the WithToolOffset
// z-offset (zero by default), and the cached pose is computed before return.
//
// Errors: ErrNoLinks, ErrTooManyLinks, ErrJointCount (WithJointVector length).
// Complexity: O(n) for n links.
func NewChain(links []Link, opts ...ChainOption) (*Chain, error) {
	cfg := defaultChainConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(links) == 0 {
		return nil, chainErrorf(opNewChain, ErrNoLinks)
	}
	if len(links) > cfg.capacity {
		return nil, chainErrorf(opNewChain, ErrTooManyLinks)
	}

	c := &Chain{
		capacity: cfg.capacity,
		links:    make([]Link, len(links)),
		q:        make([]float64, len(links)),
		tool:     matrix.Identity4(),
	}
	copy(c.links, links)

	if cfg.joints != nil {
		if len(cfg.joints) != len(links) {
			return nil, chainErrorf(opNewChain, ErrJointCount)
		}
		copy(c.q, cfg.joints)
	} else {
		for i := range c.links {
			c.q[i] = c.links[i].theta
		}
	}

	// a pure translation always inverts
	c.tool[11] = cfg.zOffset
	c.zOffset = cfg.zOffset
	inv, err := invertTransform(c.tool)
	if err != nil {
		return nil, chainErrorf(opNewChain, err)
	}
	c.toolInv = inv
	c.refreshLocked()

	return c, nil
}

// Capacity returns the maximum number of links this chain accepts.
func (c *Chain) Capacity() int { return c.capacity }

// LinkCount returns the number of links.
func (c *Chain) LinkCount() int { return len(c.links) }

// Links returns a copy of the links, each carrying the θ last used by a
// forward-kinematics evaluation.
func (c *Chain) Links() []Link {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Link, len(c.links))
	copy(out, c.links)

	return out
}

// SetJointVector overwrites every joint value and recomputes the pose.
// Returns ErrJointCount unless len(q) == LinkCount().
func (c *Chain) SetJointVector(q []float64) error {
	if len(q) != len(c.links) {
		return chainErrorf(opSetJointVector, ErrJointCount)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	copy(c.q, q)
	c.refreshLocked()

	return nil
}

// SetJointValue overwrites joint i and recomputes the pose.
// Returns ErrJointIndex for i outside [0, LinkCount()).
func (c *Chain) SetJointValue(i int, v float64) error {
	if err := c.checkIndex(opSetJointValue, i); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.q[i] = v
	c.refreshLocked()

	return nil
}

// JointVector returns a copy of the current joint vector.
func (c *Chain) JointVector() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]float64, len(c.q))
	copy(out, c.q)

	return out
}

// JointValue returns joint i.
// Returns ErrJointIndex for i outside [0, LinkCount()).
func (c *Chain) JointValue(i int) (float64, error) {
	if err := c.checkIndex(opJointValue, i); err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.q[i], nil
}

// CurrentTransform returns the cached end-effector pose.
func (c *Chain) CurrentTransform() matrix.Mat4 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

// CurrentPosition returns the position column of the cached pose.
func (c *Chain) CurrentPosition() [3]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current.Position()
}

// SetCurrentPosition overwrites the position column of the cached pose and
// sets its [3][3] element to 1. The rotation block is untouched.
//
// The result no longer corresponds to the joint vector; the next joint or
// tool mutation, or Refresh, recomputes it.
func (c *Chain) SetCurrentPosition(x, y, z float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current[3] = x
	c.current[7] = y
	c.current[11] = z
	c.current[15] = 1
}

// SetCurrentOrientation replaces the rotation block of the cached pose with
// the Euler rotation (θx, θy, θz) applied in the given order, keeping the
// previous position column (including [3][3]).
//
// Like SetCurrentPosition it desynchronises the pose from the joints.
// Returns rotation.ErrUnknownOrder for an invalid order, leaving the pose
// unchanged.
func (c *Chain) SetCurrentOrientation(thetaX, thetaY, thetaZ float64, order rotation.Order) error {
	tm, err := rotation.Trot(order, thetaX, thetaY, thetaZ)
	if err != nil {
		return chainErrorf(opSetOrientation, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// restore the position column
	tm[3], tm[7], tm[11], tm[15] = c.current[3], c.current[7], c.current[11], c.current[15]
	c.current = tm

	return nil
}

// ComposeWithTransform right-multiplies the cached pose: current = current · tm.
func (c *Chain) ComposeWithTransform(tm matrix.Mat4) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Mul(tm)
}

// ForwardKinematics returns T_0(q_0) · … · T_{n-1}(q_{n-1}) without the tool.
//
// It does not touch the cached pose or joint vector, but each link keeps q_i
// as its last-used θ, so it takes the write lock.
// Returns ErrJointCount unless len(q) == LinkCount().
//
// Complexity: O(n) 4x4 products.
func (c *Chain) ForwardKinematics(q []float64) (matrix.Mat4, error) {
	if len(q) != len(c.links) {
		return matrix.Mat4{}, chainErrorf(opForwardKinematics, ErrJointCount)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fkLocked(q), nil
}

// Refresh recomputes the cached pose from the joint vector and tool,
// discarding any SetCurrentPosition/SetCurrentOrientation/ComposeWithTransform edits.
func (c *Chain) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.refreshLocked()
}

// Pose returns the joint vector and cached pose read under one lock.
func (c *Chain) Pose() Pose {
	c.mu.RLock()
	defer c.mu.RUnlock()

	joints := make([]float64, len(c.q))
	copy(joints, c.q)

	return Pose{Joints: joints, Transform: c.current}
}

// fkLocked folds the link transforms from the base outwards.
// Caller must hold the write lock.
func (c *Chain) fkLocked(q []float64) matrix.Mat4 {
	cum := matrix.Identity4()
	for i := range c.links {
		cum = cum.Mul(c.links[i].Transform(q[i]))
	}

	return cum
}

// refreshLocked re-establishes current == FK(q) · tool.
// Caller must hold the write lock.
func (c *Chain) refreshLocked() {
	c.current = c.fkLocked(c.q).Mul(c.tool)
}

// checkIndex validates a joint index. The link count is fixed after
// construction, so no lock is needed.
func (c *Chain) checkIndex(op string, i int) error {
	if i < 0 || i >= len(c.links) {
		return chainErrorf(op, ErrJointIndex)
	}

	return nil
}
