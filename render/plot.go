package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CreatePNG saves a line plot of the outline for quick visual checks.
// The format is inferred from the path extension, so .svg and .pdf
// work too.
func CreatePNG(path string, o Outliner) error {
	points := o.Profile()
	if len(points) < 3 {
		return errShortOutline
	}
	xys := make(plotter.XYs, len(points)+1)
	for i, p := range points {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	xys[len(points)] = xys[0] // close the loop
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Add(plotter.NewGrid(), line)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, path)
}
