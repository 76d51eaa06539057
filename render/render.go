// Package render writes generated 2D outlines to vector and raster
// file formats.
package render

import (
	"errors"
	"io"

	"gonum.org/v1/gonum/spatial/r2"
)

// Outliner is the contract between outline generators and the writers
// in this package: an ordered point list tracing a closed boundary
// counter-clockwise, plus a bounding box for viewport framing. The
// writers close the loop; generators need not repeat the first point.
type Outliner interface {
	Profile() []r2.Vec
	Bounds() r2.Box
}

var errShortOutline = errors.New("render: outline needs at least 3 points")

// errWriter latches the first write error so emission code can stay
// linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
