package diagram

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosection/internal/scalar"
)

// ExportSectionDiagram exports the composite section to an image file
// (png, svg or pdf by extension; png when unrecognized).
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Section Properties"
	if data.Name != "" {
		p.Title.Text = data.Name
	}
	axisLabel := "x"
	if data.Units != "" {
		axisLabel = "x (" + data.Units + ")"
	}
	p.X.Label.Text = axisLabel
	if data.Units != "" {
		p.Y.Label.Text = "y (" + data.Units + ")"
	} else {
		p.Y.Label.Text = "y"
	}

	minX, minY, maxX, maxY := bounds(data)

	// Shape outlines: solid black for material, dashed gray for
	// holes.
	for _, o := range data.Outlines {
		pts := make(plotter.XYs, len(o.Points)+1)
		for i, pt := range o.Points {
			pts[i] = plotter.XY{X: float64(pt[0]), Y: float64(pt[1])}
		}
		pts[len(o.Points)] = pts[0]

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		if o.Removed {
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = color.Gray{Y: 112}
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(line)
	}

	// Principal axis through the centroid, dashed red.
	cx, cy := float64(data.Centroid[0]), float64(data.Centroid[1])
	dx := math.Cos(float64(data.PrincipalAngle))
	dy := math.Sin(float64(data.PrincipalAngle))
	reach := math.Hypot(maxX-minX, maxY-minY) * 0.6
	axisLine, err := plotter.NewLine(plotter.XYs{
		{X: cx - reach*dx, Y: cy - reach*dy},
		{X: cx + reach*dx, Y: cy + reach*dy},
	})
	if err != nil {
		return err
	}
	axisLine.LineStyle.Width = vg.Points(1.5)
	axisLine.LineStyle.Color = color.RGBA{R: 255, A: 255}
	axisLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axisLine)

	// Centroid marker.
	centroid, err := plotter.NewScatter(plotter.XYs{{X: cx, Y: cy}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(5)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	p.Legend.Add("principal axis", axisLine)

	width := 7 * vg.Inch
	height := 7 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// degrees formats a radian angle in degrees for labels.
func degrees(angle scalar.Float) float64 {
	return float64(angle) * scalar.RadToDeg
}
