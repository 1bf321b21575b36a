// Package diagram renders composite cross-sections: an ASCII view for
// the terminal, a gonum/plot image export, and an asciigraph sweep of
// the centroidal moment of inertia against axis rotation.
package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gosection/internal/scalar"
)

// Outline is one shape's closed boundary polyline in the shared
// reference frame. Removed marks holes (negative-weight shapes).
type Outline struct {
	Points  [][2]scalar.Float
	Removed bool
}

// SectionDiagramData holds everything needed to draw a composite
// section.
type SectionDiagramData struct {
	Name     string
	Units    string
	Outlines []Outline

	// Centroid position and principal-axis angle (radians) in the
	// shared reference frame.
	Centroid       [2]scalar.Float
	PrincipalAngle scalar.Float
}

// DrawASCIISectionDiagram renders the section outlines, centroid and
// principal axis on a character grid.
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	const (
		widthChars  = 61
		heightChars = 25
	)

	minX, minY, maxX, maxY := bounds(data)
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 || spanY <= 0 {
		return ""
	}
	// Breathing room so edges don't sit on the border.
	minX -= spanX * 0.05
	maxX += spanX * 0.05
	minY -= spanY * 0.05
	maxY += spanY * 0.05
	spanX = maxX - minX
	spanY = maxY - minY

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars))
	}

	put := func(x, y float64, r rune) {
		col := int((x - minX) / spanX * float64(widthChars-1))
		row := heightChars - 1 - int((y-minY)/spanY*float64(heightChars-1))
		if col >= 0 && col < widthChars && row >= 0 && row < heightChars {
			grid[row][col] = r
		}
	}

	// Principal axis first so shape edges draw over it.
	cx, cy := float64(data.Centroid[0]), float64(data.Centroid[1])
	dx := math.Cos(float64(data.PrincipalAngle))
	dy := math.Sin(float64(data.PrincipalAngle))
	reach := math.Hypot(spanX, spanY)
	for t := -reach; t <= reach; t += reach / 200 {
		put(cx+t*dx, cy+t*dy, '·')
	}

	for _, o := range data.Outlines {
		mark := '█'
		if o.Removed {
			mark = '░'
		}
		n := len(o.Points)
		for i := 0; i < n; i++ {
			a, b := o.Points[i], o.Points[(i+1)%n]
			ax, ay := float64(a[0]), float64(a[1])
			bx, by := float64(b[0]), float64(b[1])
			steps := 2*int(math.Max(math.Abs(bx-ax)/spanX*widthChars,
				math.Abs(by-ay)/spanY*heightChars)) + 2
			for s := 0; s <= steps; s++ {
				t := float64(s) / float64(steps)
				put(ax+t*(bx-ax), ay+t*(by-ay), mark)
			}
		}
	}

	put(cx, cy, 'C')

	var sb strings.Builder
	sb.WriteString("\n")
	if data.Name != "" {
		sb.WriteString(fmt.Sprintf("  SECTION: %s\n", data.Name))
	} else {
		sb.WriteString("  SECTION\n")
	}
	sb.WriteString("  ─────────────────────────────────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("  █ solid   ░ removed   C centroid   · principal axis (%.2f°)\n",
		degrees(data.PrincipalAngle)))
	return sb.String()
}

func bounds(data SectionDiagramData) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, o := range data.Outlines {
		for _, p := range o.Points {
			minX = math.Min(minX, float64(p[0]))
			maxX = math.Max(maxX, float64(p[0]))
			minY = math.Min(minY, float64(p[1]))
			maxY = math.Max(maxY, float64(p[1]))
		}
	}
	return minX, minY, maxX, maxY
}
