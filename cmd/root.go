package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pirex",
	Short: "Pirex storefront CLI",
	Long:  "Management commands for the Pirex storefront backend: catalog export, migrations and cron jobs.",
}

// Execute runs the CLI. Applies registered extension commands first.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
