package diagram

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosection/internal/scalar"
	"github.com/alexiusacademia/gosection/internal/section"
)

func plateData() SectionDiagramData {
	return SectionDiagramData{
		Name:  "Plate",
		Units: "mm",
		Outlines: []Outline{
			{Points: [][2]scalar.Float{{0, 0}, {100, 0}, {100, 60}, {0, 60}}},
			{Points: [][2]scalar.Float{{40, 20}, {60, 20}, {60, 40}, {40, 40}}, Removed: true},
		},
		Centroid:       [2]scalar.Float{50, 30},
		PrincipalAngle: 0,
	}
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	out := DrawASCIISectionDiagram(plateData())
	assert.Contains(t, out, "SECTION: Plate")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "░")
	assert.Contains(t, out, "C")
	assert.Contains(t, out, "principal axis")
	// Every grid row is framed.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			assert.True(t, strings.HasSuffix(line, "│"), "unframed row %q", line)
		}
	}
}

func TestDrawASCIISectionDiagramEmpty(t *testing.T) {
	assert.Empty(t, DrawASCIISectionDiagram(SectionDiagramData{}))
}

func TestExportSectionDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.png")
	require.NoError(t, ExportSectionDiagram(plateData(), path))
	assert.FileExists(t, path)
}

func TestExportSectionDiagramDefaultsToPNG(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportSectionDiagram(plateData(), filepath.Join(dir, "plate")))
	assert.FileExists(t, filepath.Join(dir, "plate.png"))
}

func TestDrawMomentSweep(t *testing.T) {
	s := section.Rectangle{Size: [2]scalar.Float{4, 6}}
	out := DrawMomentSweep(s)
	assert.Contains(t, out, "centroidal Jx")
	assert.Contains(t, out, "principal axis at")
	// An origin-cornered upright rectangle has axis-aligned principal
	// axes.
	assert.Contains(t, out, "0.00°")
}
