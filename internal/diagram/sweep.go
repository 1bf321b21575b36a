package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gosection/internal/scalar"
	"github.com/alexiusacademia/gosection/internal/section"
)

// sweepStep is the sampling interval of the sweep, in degrees.
const sweepStep = 3

// DrawMomentSweep plots the centroidal moment of inertia Jx as the
// reference axes rotate from -90° to +90° about the centroid. The
// extrema of the curve sit at the principal-axis angles, so the graph
// doubles as a visual check on PrincipalAxis.
func DrawMomentSweep(s section.Section) string {
	c := s.Centroid()
	centered := section.Translated{
		Origin: s,
		Offset: [2]scalar.Float{-c[0], -c[1]},
	}

	var data []float64
	for deg := -90; deg <= 90; deg += sweepStep {
		rotated := section.Rotated{
			Origin: centered,
			Angle:  scalar.Float(deg) * scalar.DegToRad,
		}
		data = append(data, float64(rotated.MomentOfInertia()[1]))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(61),
		asciigraph.Caption("centroidal Jx, axis rotation -90° .. +90°"),
	)

	angle := degrees(section.PrincipalAxis(s))
	return fmt.Sprintf("\n%s\n  principal axis at %.2f° (extremum of the curve)\n", graph, angle)
}
