// Command dhkin evaluates the forward kinematics of a robot described by a
// D-H table and prints the links, joints and end-effector pose.
//
// Usage:
//
//	dhkin -robot robot.yaml [-joints 0,90] [-deg] [-tool-z 10]
//	      [-orient 0,0,90 -order 1] [-position x,y,z]
//	dhkin -builtin puma560 -joints 0,45,-90,0,30,0 -deg
//
// Logging goes through glog (-logtostderr, -v=1 for load details).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/katalvlaran/dhkin/config"
	"github.com/katalvlaran/dhkin/dh"
	"github.com/katalvlaran/dhkin/dhprint"
	"github.com/katalvlaran/dhkin/interop"
	"github.com/katalvlaran/dhkin/rotation"
)

type options struct {
	robot     string
	builtin   string
	joints    string
	degrees   bool
	toolZ     float64
	orient    string
	order     int
	position  string
	plain     bool
	precision int

	toolZSet bool // -tool-z given explicitly
}

func registerFlags(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.robot, "robot", "", "Path to a robot definition (.yaml/.yml).")
	fs.StringVar(&o.builtin, "builtin", "", "Name of a bundled robot: "+strings.Join(config.BuiltinNames(), ", ")+".")
	fs.StringVar(&o.joints, "joints", "", "Comma-separated joint angles, one per link.")
	fs.BoolVar(&o.degrees, "deg", false, "Read -joints and -orient in degrees and print angles in degrees.")
	fs.Float64Var(&o.toolZ, "tool-z", 0, "Tool z-offset along the last link's z-axis.")
	fs.StringVar(&o.orient, "orient", "", "Override the end-effector orientation with Euler angles x,y,z.")
	fs.IntVar(&o.order, "order", int(rotation.OrderXYZ), "Euler order for -orient: 1 = X,Y,Z; 2 = Z,Y,X.")
	fs.StringVar(&o.position, "position", "", "Override the end-effector position x,y,z.")
	fs.BoolVar(&o.plain, "plain", false, "Tab-separated output without column alignment (default when stdout is not a terminal).")
	fs.IntVar(&o.precision, "precision", dhprint.DefaultPrecision, "Decimals per printed value.")

	return o
}

// parse parses args and records which optional flags were set.
func parse(fs *flag.FlagSet, o *options, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "tool-z" {
			o.toolZSet = true
		}
	})
	if (o.robot == "") == (o.builtin == "") {
		return errors.New("exactly one of -robot or -builtin is required")
	}
	if o.precision < -1 {
		return fmt.Errorf("-precision must be >= -1, got %d", o.precision)
	}

	return nil
}

func (o *options) angle(v float64) float64 {
	if o.degrees {
		return rotation.Deg2Rad(v)
	}

	return v
}

func loadRobot(o *options) (*config.Robot, error) {
	if o.builtin != "" {
		return config.Builtin(o.builtin)
	}

	return config.Load(o.robot)
}

func run(o *options, out io.Writer) error {
	r, err := loadRobot(o)
	if err != nil {
		return fmt.Errorf("while loading robot: %w", err)
	}
	c, err := r.Build()
	if err != nil {
		return fmt.Errorf("while building chain: %w", err)
	}
	glog.Infof("Robot %s: %d links", r.Name, c.LinkCount())

	if o.joints != "" {
		q, err := parseFloats(o.joints, c.LinkCount())
		if err != nil {
			return fmt.Errorf("-joints: %w", err)
		}
		for i := range q {
			q[i] = o.angle(q[i])
		}
		if err := c.SetJointVector(q); err != nil {
			return err
		}
	}
	if o.toolZSet {
		if err := c.SetToolOffset(o.toolZ); err != nil {
			return err
		}
	}

	popts := []dhprint.Option{dhprint.WithPrecision(o.precision)}
	if o.degrees {
		popts = append(popts, dhprint.WithDegrees())
	}
	if o.plain {
		popts = append(popts, dhprint.WithPlain())
	}

	if err := dhprint.Chain(out, c, popts...); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := dhprint.Joints(out, c, popts...); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := dhprint.Transform(out, c, popts...); err != nil {
		return err
	}

	if err := applyOverrides(o, c); err != nil {
		return err
	}
	if o.orient != "" || o.position != "" {
		fmt.Fprintln(out)
		if err := dhprint.Mat4(out, "TmCurrent (overridden) = ", c.CurrentTransform(), popts...); err != nil {
			return err
		}
	}

	return summary(out, c)
}

// applyOverrides applies the -orient and -position escape hatches.
func applyOverrides(o *options, c *dh.Chain) error {
	if o.orient != "" {
		e, err := parseFloats(o.orient, 3)
		if err != nil {
			return fmt.Errorf("-orient: %w", err)
		}
		err = c.SetCurrentOrientation(o.angle(e[0]), o.angle(e[1]), o.angle(e[2]), rotation.Order(o.order))
		if err != nil {
			return err
		}
		glog.Warningf("End-effector orientation overridden; pose no longer follows the joints")
	}
	if o.position != "" {
		p, err := parseFloats(o.position, 3)
		if err != nil {
			return fmt.Errorf("-position: %w", err)
		}
		c.SetCurrentPosition(p[0], p[1], p[2])
		glog.Warningf("End-effector position overridden; pose no longer follows the joints")
	}

	return nil
}

func summary(out io.Writer, c *dh.Chain) error {
	tm := c.CurrentTransform()
	p := interop.PositionVec3(tm)
	q := interop.Quaternion(tm)

	_, err := fmt.Fprintf(out, "\nposition = (%.4f, %.4f, %.4f)\nquaternion = (w %.4f, x %.4f, y %.4f, z %.4f)\n",
		p.X(), p.Y(), p.Z(), q.Real, q.Imag, q.Jmag, q.Kmag)

	return err
}

// parseFloats splits a comma-separated list and requires exactly n values.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}

	out := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func main() {
	o := registerFlags(flag.CommandLine)
	if err := parse(flag.CommandLine, o, os.Args[1:]); err != nil {
		glog.Exitf("Error: %v", err)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		o.plain = true
	}

	if err := run(o, os.Stdout); err != nil {
		glog.Exitf("Error: %v", err)
	}
	glog.Flush()
}
