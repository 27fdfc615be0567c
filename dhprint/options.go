package dhprint

import "fmt"

// DefaultPrecision is the number of decimals printed per value.
const DefaultPrecision = 4

// Option configures rendering.
type Option func(o *options)

type options struct {
	degrees   bool // print joint angles and twists in degrees
	plain     bool // skip column alignment
	precision int  // decimals; -1 means shortest round-trip form
}

func gatherOptions(opts ...Option) options {
	o := options{precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithDegrees prints joint angles and link twists in degrees instead of radians.
// Transforms are never converted.
func WithDegrees() Option {
	return func(o *options) { o.degrees = true }
}

// WithPlain disables column alignment; cells are separated by a single tab.
func WithPlain() Option {
	return func(o *options) { o.plain = true }
}

// WithPrecision sets the number of decimals. -1 selects the shortest
// representation that round-trips.
// Panics if p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(fmt.Sprintf("dhprint: WithPrecision(%d): precision must be >= -1", p))
	}

	return func(o *options) { o.precision = p }
}
