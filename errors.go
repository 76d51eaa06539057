package involute

import "errors"

// ErrProfile is returned when the involute walk exhausts its sample
// budget before the curve spans the tooth's angular half-width. The
// parameter combination (module, pressure angle, teeth, backlash) is
// geometrically infeasible at the requested resolution and there is
// no retry.
var ErrProfile = errors.New("involute: could not complete tooth profile within MaxSteps")

// DimensionError is returned by New for parameters that violate the
// gear's dimensional preconditions.
type DimensionError string

func (e DimensionError) Error() string { return "involute: " + string(e) }
