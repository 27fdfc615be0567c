package dhprint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/dhkin/dh"
	"github.com/katalvlaran/dhkin/matrix"
	"github.com/katalvlaran/dhkin/rotation"
)

// Labels used by the chain printers.
const (
	JointsLabel    = "qCurrent = "
	TransformLabel = "TmCurrent = "
)

// Matrix writes label on its own line followed by the rows×cols row-major
// buffer, one row per line.
//
// Errors: matrix.ErrDimensionMismatch / ErrInvalidDimensions for a bad
// shape, or the first write error from w.
func Matrix(w io.Writer, label string, buf []float64, rows, cols int, opts ...Option) error {
	if err := matrix.ValidateShape(buf, rows, cols); err != nil {
		return fmt.Errorf("dhprint: Matrix: %w", err)
	}

	return writeMatrix(w, label, buf, rows, cols, gatherOptions(opts...))
}

// Mat4 writes a 4x4 transform. WithDegrees has no effect here.
func Mat4(w io.Writer, label string, m matrix.Mat4, opts ...Option) error {
	return writeMatrix(w, label, m[:], 4, 4, gatherOptions(opts...))
}

// Link writes one D-H row. θ is the joint variable and printed as "q".
func Link(w io.Writer, l dh.Link, opts ...Option) error {
	o := gatherOptions(opts...)
	_, d, a, alpha := l.Params()

	_, err := fmt.Fprintf(w, "theta = q\td = %s\ta = %s\talpha = %s\n",
		o.format(d), o.format(a), o.format(o.angle(alpha)))
	if err != nil {
		return fmt.Errorf("dhprint: Link: %w", err)
	}

	return nil
}

// Chain writes the link count and every link, numbered from 1.
func Chain(w io.Writer, c *dh.Chain, opts ...Option) error {
	bw := bufio.NewWriter(w)
	links := c.Links()

	fmt.Fprintf(bw, "No. of links = %d\n", len(links))
	for i, l := range links {
		fmt.Fprintf(bw, "\nLink %d:\n", i+1)
		if err := Link(bw, l, opts...); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dhprint: Chain: %w", err)
	}

	return nil
}

// Joints writes the current joint vector as a 1×n row.
func Joints(w io.Writer, c *dh.Chain, opts ...Option) error {
	o := gatherOptions(opts...)
	q := c.JointVector()
	for i := range q {
		q[i] = o.angle(q[i])
	}

	return writeMatrix(w, JointsLabel, q, 1, len(q), o)
}

// Transform writes the chain's cached end-effector transform.
func Transform(w io.Writer, c *dh.Chain, opts ...Option) error {
	tm := c.CurrentTransform()

	return writeMatrix(w, TransformLabel, tm[:], 4, 4, gatherOptions(opts...))
}

// writeMatrix assumes buf has already been shape-checked.
func writeMatrix(w io.Writer, label string, buf []float64, rows, cols int, o options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, label)

	var out io.Writer = bw
	var tw *tabwriter.Writer
	if !o.plain {
		tw = tabwriter.NewWriter(bw, 0, 8, 2, ' ', tabwriter.AlignRight)
		out = tw
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(out, "%s\t", o.format(buf[i*cols+j]))
		}
		fmt.Fprintln(out)
	}

	if tw != nil {
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("dhprint: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dhprint: %w", err)
	}

	return nil
}

func (o options) angle(rad float64) float64 {
	if o.degrees {
		return rotation.Rad2Deg(rad)
	}

	return rad
}

func (o options) format(v float64) string {
	s := strconv.FormatFloat(v, 'f', o.precision, 64)
	// fold negative zero, including values that round to it
	if o.precision >= 0 {
		if z, err := strconv.ParseFloat(s, 64); err == nil && z == 0 {
			return strconv.FormatFloat(0, 'f', o.precision, 64)
		}
	} else if v == 0 {
		return "0"
	}

	return s
}
