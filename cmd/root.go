package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gosection",
	Short: "Cross-Section Property Calculator",
	Long: `gosection - Go Cross-Section Property Calculator

A CLI tool for computing geometric properties of composite structural
cross-sections: area, centroid, second moments of area, product of
inertia and principal-axis orientation.

Sections are composed from circle and rectangle primitives that can be
translated, rotated and weighted (negative weights model holes and
openings), so arbitrary built-up shapes (I-beams, hollow boxes,
perforated plates, multi-material sections) reduce to one definition
file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosection v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Cross-Section Property Calculator                    ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing geometric properties of composite")
		fmt.Println("  structural cross-sections.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Area, centroid, moments and product of inertia")
		fmt.Println("    • Principal-axis orientation (Mohr's circle)")
		fmt.Println("    • Composite shapes: translate, rotate, weight, combine")
		fmt.Println("    • ASCII and image (png/svg/pdf) section diagrams")
		fmt.Println()
		fmt.Println("  Use 'gosection --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
