package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pirex.GO/config"
	catalogService "pirex.GO/service/catalog"
)

var (
	exportFile     string
	exportFeatured bool
)

var catalogExportCmd = &cobra.Command{
	Use:   "catalog:export",
	Short: "Dump the normalized catalog as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		view := catalogService.ViewShop
		if exportFeatured {
			view = catalogService.ViewFeatured
		}

		loader := catalogService.NewLoader(db, config.AppConfig.ShopID)
		res, err := loader.Load(context.Background(), view)
		if err != nil {
			fmt.Printf("Catalog load failed: %v\n", err)
			os.Exit(1)
		}
		if res.Sample {
			fmt.Println("Warning: all query strategies failed, exporting sample data")
		}

		out := os.Stdout
		if exportFile != "" {
			f, err := os.Create(exportFile)
			if err != nil {
				fmt.Printf("Failed to create %s: %v\n", exportFile, err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Printf("Encode failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	catalogExportCmd.Flags().StringVarP(&exportFile, "out", "o", "", "Write JSON to file instead of stdout")
	catalogExportCmd.Flags().BoolVar(&exportFeatured, "featured", false, "Export the featured view (limit 3)")
	rootCmd.AddCommand(catalogExportCmd)
}
