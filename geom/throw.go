package geom

import "github.com/pkg/errors"

// Geometric degeneracies (missing intersections, invalid arcs) are ordinary
// data conditions and flow back through optional results and error returns.
// Logic defects (states the math says cannot happen) panic instead, and
// the public facade recovers them into errors so library users never see a
// crash for what is really a bug report.

type GeomError error

// Panic with a GeomError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandleGeomPanicRecover converts a recovered GeomError panic back into an
// error, and re-panics anything that isn't ours.
func HandleGeomPanicRecover(r interface{}) error {
	if r != nil {
		if geomError, ok := r.(GeomError); ok {
			return geomError
		}
		panic(r)
	}
	return nil
}
