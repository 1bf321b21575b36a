package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/model"
	"github.com/alexiusacademia/gosection/internal/scalar"
	"github.com/alexiusacademia/gosection/internal/section"
)

var (
	analyzeFile        string
	analyzeShowDiagram bool
	analyzeShowSweep   bool
	analyzeExportFile  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute section properties of a composite section",
	Long: `Compute the geometric properties of a composite cross-section
defined in a JSON or YAML file: area, centroid, second moments of
area about the reference origin and about the centroid, product of
inertia, and the principal-axis orientation.

Example definition (JSON):
{
  "name": "Plate with hole",
  "units": "mm",
  "shapes": [
    {"type": "rectangle", "size": [100, 60], "offset": [-50, -30]},
    {"type": "circle", "radius": 12, "weight": -1}
  ]
}

Shapes accept "rotation" (degrees), "translate" and "weight"; a
negative weight removes material.

Examples:
  gosection analyze --file plate.json
  gosection analyze -f ibeam.yaml --diagram --sweep
  gosection analyze -f plate.json -o plate.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to section definition file [required]")
	analyzeCmd.MarkFlagRequired("file")

	// Diagram options
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	analyzeCmd.Flags().BoolVar(&analyzeShowSweep, "sweep", false, "Show moment-of-inertia sweep over axis rotation")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	def, err := model.LoadFromFile(analyzeFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	sec := def.Build()
	area := sec.Area()
	centroid := sec.Centroid()
	j := sec.MomentOfInertia()
	jxy := sec.ProductOfInertia()
	angle := section.PrincipalAxis(sec)

	// Centroidal moments via the reverse parallel-axis theorem.
	jyc := j[0] - centroid[0]*centroid[0]*area
	jxc := j[1] - centroid[1]*centroid[1]*area
	jxyc := jxy - centroid[0]*centroid[1]*area

	unit := def.Units
	if unit == "" {
		unit = "length unit"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          COMPOSITE SECTION PROPERTY ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if def.Name != "" {
		fmt.Printf("  Section: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Printf("  Description: %s\n", def.Description)
	}
	fmt.Printf("  Shapes: %d\n", len(def.Shapes))
	fmt.Println()

	fmt.Println("SHAPES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tType\tWeight\tRotation\tDescription\n")
	fmt.Fprintf(w, "  ─\t────\t──────\t────────\t───────────\n")
	for i, s := range def.Shapes {
		weight := scalar.Float(1)
		if s.Weight != nil {
			weight = *s.Weight
		}
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%.1f°\t%s\n", i+1, s.Type, weight, s.Rotation, s.Description)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PROPERTIES (about reference origin):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.4f %s²\n", area, unit)
	fmt.Fprintf(w, "  Centroid:\t[%.4f, %.4f] %s\n", centroid[0], centroid[1], unit)
	fmt.Fprintf(w, "  Jy (about y-axis):\t%.4f %s⁴\n", j[0], unit)
	fmt.Fprintf(w, "  Jx (about x-axis):\t%.4f %s⁴\n", j[1], unit)
	fmt.Fprintf(w, "  Jxy (product):\t%.4f %s⁴\n", jxy, unit)
	w.Flush()
	fmt.Println()

	fmt.Println("PROPERTIES (about centroid):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Jy,c:\t%.4f %s⁴\n", jyc, unit)
	fmt.Fprintf(w, "  Jx,c:\t%.4f %s⁴\n", jxc, unit)
	fmt.Fprintf(w, "  Jxy,c:\t%.4f %s⁴\n", jxyc, unit)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  PRINCIPAL AXIS = %.6f rad (%.4f°)          \n", angle, float64(angle)*scalar.RadToDeg)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	outlines := diagramOutlines(def)
	data := diagram.SectionDiagramData{
		Name:           def.Name,
		Units:          def.Units,
		Outlines:       outlines,
		Centroid:       centroid,
		PrincipalAngle: angle,
	}

	if analyzeShowDiagram {
		fmt.Println(diagram.DrawASCIISectionDiagram(data))
	}

	if analyzeShowSweep {
		fmt.Println(diagram.DrawMomentSweep(sec))
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportSectionDiagram(data, analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", analyzeExportFile)
		}
	}
}

// diagramOutlines converts model outlines to diagram outlines.
func diagramOutlines(def *model.Definition) []diagram.Outline {
	var outlines []diagram.Outline
	for _, o := range def.Outlines() {
		outlines = append(outlines, diagram.Outline{
			Points:  o.Points,
			Removed: o.Removed,
		})
	}
	return outlines
}
