package render

import (
	"github.com/yofu/dxf"
)

// CreateDXF writes the outline to path as a closed loop of DXF line
// entities on a single layer. The yofu/dxf drawing owns its output
// file, so there is no writer-based variant.
func CreateDXF(path string, o Outliner) error {
	points := o.Profile()
	if len(points) < 3 {
		return errShortOutline
	}
	d := dxf.NewDrawing()
	d.Header().LtScale = 100.0
	d.AddLayer("Outline", dxf.DefaultColor, dxf.DefaultLineType, true)
	prev := points[len(points)-1]
	for _, p := range points {
		if _, err := d.Line(prev.X, prev.Y, 0, p.X, p.Y, 0); err != nil {
			return err
		}
		prev = p
	}
	return d.SaveAs(path)
}
