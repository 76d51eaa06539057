// Package involute generates the 2D outline of involute spur gears.
//
// A gear is described by its manufacturing parameters (module, tooth
// count, pressure angle, fillet, backlash) and generated as an ordered,
// counter-clockwise point sequence tracing the closed perimeter. The
// pipeline is staged: half a tooth flank is walked along the involute
// curve, mirrored into a full tooth, joined to the filleted root arc
// between teeth, and the resulting unit is replicated around the full
// circle.
package involute

import (
	"math"

	"github.com/makerfab/involute/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Standard dedendum allows for clearance below the meshing gear's
// addendum.
const dedendumRatio = 1.157

const (
	defaultPressureAngleDeg = 20
	defaultMaxSteps         = 100
	defaultArcStepSize      = 0.1
)

// Params defines an involute gear.
type Params struct {
	// Module is the gear's linear size unit: pitch diameter divided
	// by tooth count. Must be positive.
	Module float64
	// Teeth is the tooth count. Must be positive.
	Teeth int
	// PressureAngleDeg is the pressure angle in degrees. Zero selects
	// the common 20 degree angle.
	PressureAngleDeg float64
	// Fillet is the radius of the fillet joining a tooth flank to the
	// root circle. Ignored for ring gears. Radii larger than half the
	// root arc length produce a self-overlapping arc; the result is
	// well defined but not a physically meaningful fillet.
	Fillet float64
	// Backlash is the circumferential play between mating teeth.
	Backlash float64
	// MaxSteps caps the involute walk sample count. Higher is more
	// accurate. Zero selects 100.
	MaxSteps int
	// ArcStepSize is the arc length step used to sample the root arc.
	// Zero selects 0.1.
	ArcStepSize float64
	// Ring generates an internal gear: addendum and dedendum swap so
	// the clearance lands on the other side, and fillets are
	// unsupported.
	Ring bool
}

// Gear is an involute gear with all derived dimensions fixed at
// construction. It is immutable and safe for concurrent use.
type Gear struct {
	params Params

	pressureAngle float64 // radians
	addendum      float64 // radial extent above the pitch circle
	dedendum      float64 // radial depth below the pitch circle
	pitchRadius   float64
	baseRadius    float64 // involute generating circle
	outerRadius   float64
	rootRadius    float64
	filletRadius  float64

	thetaToothAndGap    float64 // angular width of one tooth plus one gap
	thetaTooth          float64 // tooth width at the pitch circle, less backlash
	thetaPitchIntersect float64 // where the involute crosses the pitch circle
	thetaFullTooth      float64 // full tooth width at the root circle

	maxSteps    int
	arcStepSize float64
}

// New validates p, derives the gear's dimensions and returns a gear
// ready for generation. It returns a DimensionError for out-of-range
// parameters and ErrProfile when the involute cannot span the tooth
// within p.MaxSteps samples.
func New(p Params) (*Gear, error) {
	switch {
	case p.Module <= 0:
		return nil, DimensionError("module must be positive")
	case p.Teeth <= 0:
		return nil, DimensionError("tooth count must be positive")
	case p.PressureAngleDeg < 0 || p.PressureAngleDeg >= 90:
		return nil, DimensionError("pressure angle must be in [0, 90) degrees")
	case p.Fillet < 0:
		return nil, DimensionError("fillet radius must not be negative")
	case p.Backlash < 0:
		return nil, DimensionError("backlash must not be negative")
	case p.MaxSteps < 0:
		return nil, DimensionError("max steps must not be negative")
	case p.ArcStepSize < 0:
		return nil, DimensionError("arc step size must not be negative")
	}
	if p.PressureAngleDeg == 0 {
		p.PressureAngleDeg = defaultPressureAngleDeg
	}
	if p.MaxSteps == 0 {
		p.MaxSteps = defaultMaxSteps
	}
	if p.ArcStepSize == 0 {
		p.ArcStepSize = defaultArcStepSize
	}

	g := Gear{
		params:        p,
		pressureAngle: p.PressureAngleDeg * math.Pi / 180,
		addendum:      p.Module,
		dedendum:      dedendumRatio * p.Module,
		maxSteps:      p.MaxSteps,
		arcStepSize:   p.ArcStepSize,
	}
	if p.Ring {
		// A ring gear meshes from the inside so the clearance swaps
		// sides.
		g.addendum, g.dedendum = g.dedendum, g.addendum
	}
	g.pitchRadius = p.Module * float64(p.Teeth) / 2
	g.baseRadius = math.Cos(g.pressureAngle) * g.pitchRadius
	g.outerRadius = g.pitchRadius + g.addendum
	g.rootRadius = g.pitchRadius - g.dedendum
	if g.rootRadius <= 0 {
		return nil, DimensionError("tooth count too low: root radius must be positive")
	}
	if !p.Ring {
		g.filletRadius = p.Fillet
	}

	g.thetaToothAndGap = 2 * math.Pi / float64(p.Teeth)
	angularBacklash := p.Backlash / 2 / g.pitchRadius
	if p.Ring {
		g.thetaTooth = g.thetaToothAndGap/2 + angularBacklash
	} else {
		g.thetaTooth = g.thetaToothAndGap/2 - angularBacklash
	}

	var err error
	g.thetaPitchIntersect, g.thetaFullTooth, err = toothAngles(g.baseRadius, g.pitchRadius, g.thetaTooth, g.maxSteps)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// PitchRadius returns the radius of the pitch circle.
func (g *Gear) PitchRadius() float64 { return g.pitchRadius }

// BaseRadius returns the radius of the involute generating circle.
func (g *Gear) BaseRadius() float64 { return g.baseRadius }

// OuterRadius returns the radius of the gear's extremities.
func (g *Gear) OuterRadius() float64 { return g.outerRadius }

// RootRadius returns the radius of the gaps between teeth.
func (g *Gear) RootRadius() float64 { return g.rootRadius }

// AngularPitch returns the angle spanned by one tooth and one gap.
func (g *Gear) AngularPitch() float64 { return g.thetaToothAndGap }

// ToothArc returns the angle spanned by one full tooth at the root
// circle.
func (g *Gear) ToothArc() float64 { return g.thetaFullTooth }

// HalfTooth generates half an involute flank, from the base circle to
// the tooth's angular centerline, ready to be mirrored into one
// symmetric tooth. Points are clipped radially to stay between the
// root and outer circles and their polar angle ascends monotonically.
func (g *Gear) HalfTooth() []r2.Vec {
	points := make([]r2.Vec, 0, g.maxSteps)
	intersected := false
	for i := 0; i < g.maxSteps; i++ {
		p := involutePoint(g.baseRadius, phiAt(i, g.maxSteps))
		pol := d2.CartesianToPolar(p)
		if !intersected && pol.R >= g.pitchRadius {
			// The sample crossing the pitch circle is kept; the
			// centerline check starts on the next sample.
			intersected = true
		} else if intersected && pol.Theta >= g.thetaFullTooth/2 {
			break
		}
		switch {
		case pol.R >= g.outerRadius:
			// Flatten the tip against the outer circle.
			points = append(points, d2.PolarToXY(g.outerRadius, pol.Theta))
		case pol.R <= g.rootRadius:
			points = append(points, d2.PolarToXY(g.rootRadius, pol.Theta))
		default:
			points = append(points, p)
		}
	}
	return points
}

// Tooth generates one symmetric involute tooth, without the
// accompanying gap. The half flank is reflected, rotated onto the end
// of the first half and reversed so the whole sequence keeps ascending
// in polar angle.
func (g *Gear) Tooth() []r2.Vec {
	half := g.HalfTooth()
	m := d2.Rotate(g.thetaFullTooth).Mul(d2.Reflect(false, true))
	tooth := make([]r2.Vec, 2*len(half))
	copy(tooth, half)
	for i, p := range half {
		tooth[len(tooth)-1-i] = m.ApplyPos(p)
	}
	return tooth
}

// Root generates the boundary along the root circle between the end of
// one tooth and the start of the next. Within one fillet radius of
// either flank the radius is pushed outward along a circular fillet
// profile; the min clamp keeps oversized fillets well defined when the
// two blend zones overlap.
func (g *Gear) Root() []r2.Vec {
	rootArcLength := (g.thetaToothAndGap - g.thetaFullTooth) * g.rootRadius
	if rootArcLength <= 0 {
		// Backlash can consume the whole gap; there is no arc to walk.
		return nil
	}
	step := g.arcStepSize / g.rootRadius
	points := make([]r2.Vec, 0, int(rootArcLength/g.arcStepSize)+1)
	for theta := g.thetaFullTooth; theta < g.thetaToothAndGap; theta += step {
		arcPosition := (theta - g.thetaFullTooth) * g.rootRadius
		r := g.rootRadius
		if circlePos := math.Min(arcPosition, rootArcLength-arcPosition); circlePos < g.filletRadius {
			fr := g.filletRadius
			r += fr - math.Sqrt(fr*fr-(fr-circlePos)*(fr-circlePos))
		}
		points = append(points, d2.PolarToXY(r, theta))
	}
	return points
}

// ToothAndGap generates one tooth followed by one root arc: the unit
// that repeats every AngularPitch radians around the gear.
func (g *Gear) ToothAndGap() []r2.Vec {
	tooth := g.Tooth()
	return append(tooth, g.Root()...)
}

// Profile generates the closed gear outline: the tooth-and-gap unit
// replicated for every tooth and rotated so the first tooth is
// centered on the positive x-axis. Points trace the boundary
// counter-clockwise.
func (g *Gear) Profile() []r2.Vec {
	unit := d2.Set(g.ToothAndGap())
	points := make(d2.Set, 0, len(unit)*g.params.Teeth)
	for n := 0; n < g.params.Teeth; n++ {
		rot := d2.Rotate(g.thetaToothAndGap * float64(n))
		for _, p := range unit {
			points = append(points, rot.ApplyPos(p))
		}
	}
	d2.Rotate(-g.thetaFullTooth / 2).ApplySet(points)
	return points
}

// Bounds returns the bounding box of the gear outline, for viewport
// framing.
func (g *Gear) Bounds() r2.Box {
	return r2.Box(d2.BoxOf(g.Profile()))
}
