package dh_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dhkin/dh"
)

// ExampleChain moves a two-link planar arm and reads the tool tip.
func ExampleChain() {
	c, err := dh.NewChain([]dh.Link{
		dh.NewLink(0, 0, 1, 0),
		dh.NewLink(0, 0, 1, 0),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = c.SetJointVector([]float64{0, math.Pi / 2})
	p := c.CurrentPosition()
	fmt.Printf("tip   (%.3f, %.3f, %.3f)\n", p[0], p[1], p[2])

	_ = c.SetToolOffset(0.5)
	p = c.CurrentPosition()
	fmt.Printf("tool  (%.3f, %.3f, %.3f)\n", p[0], p[1], p[2])

	// Output:
	// tip   (1.000, 1.000, 0.000)
	// tool  (1.000, 1.000, 0.500)
}

// ExampleChain_SetJointValue shows the index check.
func ExampleChain_SetJointValue() {
	c, _ := dh.NewChain([]dh.Link{dh.NewLink(0, 0, 1, 0)})
	err := c.SetJointValue(3, 1)
	fmt.Println(err)

	// Output:
	// SetJointValue: dh: joint index: matrix: index out of range
}
