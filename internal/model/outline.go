package model

import "github.com/alexiusacademia/gosection/internal/scalar"

// circleSegments is the polygon resolution used to draw circles.
const circleSegments = 64

// Outline is a closed polyline approximating one shape of a
// definition, in the shared reference frame. Removed marks
// negative-weight shapes (holes) so renderers can style them apart.
type Outline struct {
	Points  [][2]scalar.Float
	Removed bool
}

// Outlines polygonizes every shape of the definition with its
// rotation and translation applied. The result is for rendering only;
// property computation always goes through Build.
func (d *Definition) Outlines() []Outline {
	outlines := make([]Outline, 0, len(d.Shapes))
	for _, sd := range d.Shapes {
		outlines = append(outlines, Outline{
			Points:  sd.outline(),
			Removed: sd.weight() < 0,
		})
	}
	return outlines
}

func (sd ShapeDef) outline() [][2]scalar.Float {
	var pts [][2]scalar.Float
	switch sd.Type {
	case ShapeCircle:
		r := scalar.Abs(sd.Radius)
		pts = make([][2]scalar.Float, circleSegments)
		for i := range pts {
			sin, cos := scalar.Sincos(2 * scalar.Pi * scalar.Float(i) / circleSegments)
			pts[i] = [2]scalar.Float{sd.Offset[0] + r*cos, sd.Offset[1] + r*sin}
		}
	default:
		pts = [][2]scalar.Float{
			{sd.Offset[0], sd.Offset[1]},
			{sd.Offset[0] + sd.Size[0], sd.Offset[1]},
			{sd.Offset[0] + sd.Size[0], sd.Offset[1] + sd.Size[1]},
			{sd.Offset[0], sd.Offset[1] + sd.Size[1]},
		}
	}

	if sd.Rotation != 0 {
		sin, cos := scalar.Sincos(sd.Rotation * scalar.DegToRad)
		for i, p := range pts {
			pts[i] = [2]scalar.Float{p[0]*cos - p[1]*sin, p[0]*sin + p[1]*cos}
		}
	}
	for i := range pts {
		pts[i][0] += sd.Translate[0]
		pts[i][1] += sd.Translate[1]
	}
	return pts
}
