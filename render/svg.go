package render

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo/float"
	"github.com/makerfab/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreateSVG writes the outline to path as an SVG document.
func CreateSVG(path string, o Outliner) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := WriteSVG(fp, o); err != nil {
		return err
	}
	return fp.Close()
}

// WriteSVG writes the outline as a single closed polygon element with
// a viewBox framing the outline's bounding box.
func WriteSVG(w io.Writer, o Outliner) error {
	points := o.Profile()
	if len(points) < 3 {
		return errShortOutline
	}
	b := o.Bounds()
	size := d2.Box(b).Size()

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(size.X, size.Y, b.Min.X, b.Min.Y, size.X, size.Y)
	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.X
		y[i] = p.Y
	}
	canvas.Polygon(x, y, fmt.Sprintf("fill:none;stroke:black;stroke-width:%g", strokeWidth(size)))
	canvas.End()
	return ew.err
}

// strokeWidth scales the stroke with the drawing so outlines stay
// visible across gear sizes.
func strokeWidth(size r2.Vec) float64 {
	return math.Min(size.X, size.Y) / 256
}
