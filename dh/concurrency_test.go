package dh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dhkin/dh"
)

// TestConcurrentJointWritesAndPoseReads mixes writers and readers and checks
// that every snapshot a reader sees is internally consistent.
func TestConcurrentJointWritesAndPoseReads(t *testing.T) {
	c := mustChain(t, puma())
	ref := mustChain(t, puma())

	const writers, readers, rounds = 4, 4, 100
	var g errgroup.Group

	for w := 0; w < writers; w++ {
		id := w
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				v := float64(id*rounds+i) * math.Pi / 180
				if err := c.SetJointValue(i%c.LinkCount(), v); err != nil {
					return err
				}
				if i%10 == 0 {
					if err := c.SetToolOffset(float64(i) / 100); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}

	poses := make(chan dh.Pose, readers*rounds)
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				poses <- c.Pose()
				_ = c.CurrentPosition()
				_ = c.ToolInverse()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(poses)

	for p := range poses {
		fk, err := ref.ForwardKinematics(p.Joints)
		require.NoError(t, err)
		// the tool only ever translates along z, so rotation follows from the joints
		require.InDeltaSlice(t, fk.Rotation().Slice(), p.Transform.Rotation().Slice(), tol)
	}

	// after the writers finish, the cache matches the final state
	final, err := ref.ForwardKinematics(c.JointVector())
	require.NoError(t, err)
	assertMat4Close(t, final.Mul(c.ToolTransform()), c.CurrentTransform())
}

// TestConcurrentForwardKinematics runs pure evaluations against tool writes.
func TestConcurrentForwardKinematics(t *testing.T) {
	links := puma()
	c := mustChain(t, links)
	q := []float64{0.3, 0.2, -0.1, 0.5, 0.4, -0.6}
	want := manualFK(links, q)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				fk, err := c.ForwardKinematics(q)
				if err != nil {
					return err
				}
				if fk != want {
					t.Errorf("ForwardKinematics diverged under concurrency")
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		for i := 0; i < 50; i++ {
			if err := c.SetToolTransform(0, 0, float64(i), 0); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, g.Wait())
}
