package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosection",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosection v%s\n", version.Version)
		fmt.Println("Cross-Section Property Calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
