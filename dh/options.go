package dh

import (
	"fmt"
	"math"
)

// MaxLinks is the default chain capacity.
const MaxLinks = 7

// ChainOption configures a Chain at construction.
type ChainOption func(cfg *chainConfig)

type chainConfig struct {
	capacity int       // maximum number of links
	zOffset  float64   // initial tool z-offset
	joints   []float64 // initial joint vector; nil means "use link θ"
}

func defaultChainConfig() chainConfig {
	return chainConfig{capacity: MaxLinks}
}

// WithCapacity overrides MaxLinks for this chain.
// Panics if n < 1.
func WithCapacity(n int) ChainOption {
	if n < 1 {
		panic(fmt.Sprintf("dh: WithCapacity(%d): capacity must be positive", n))
	}

	return func(cfg *chainConfig) { cfg.capacity = n }
}

// WithToolOffset starts the chain with a tool z-offset, as if SetToolOffset(z)
// had been called on a fresh chain.
// Panics on NaN or ±Inf.
func WithToolOffset(z float64) ChainOption {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		panic("dh: WithToolOffset: offset must be finite")
	}

	return func(cfg *chainConfig) { cfg.zOffset = z }
}

// WithJointVector sets the initial joint vector instead of taking each link's
// table θ. Its length is checked by NewChain. q is copied.
func WithJointVector(q []float64) ChainOption {
	joints := make([]float64, len(q))
	copy(joints, q)

	return func(cfg *chainConfig) { cfg.joints = joints }
}
