package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/model"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a section definition file",
	Long: `Check a section definition file without computing anything.

JSON files are validated against the definition schema, then both JSON
and YAML files go through the semantic checks (known shape types,
non-zero dimensions, at least one shape).

Examples:
  gosection validate --file plate.json
  gosection validate -f ibeam.yaml`,
	Run: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to section definition file [required]")
	validateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, args []string) {
	def, err := model.LoadFromFile(validateFile)
	if err != nil {
		fmt.Printf("Invalid: %v\n", err)
		return
	}

	name := def.Name
	if name == "" {
		name = validateFile
	}
	fmt.Printf("Valid: %s (%d shapes)\n", name, len(def.Shapes))
}
