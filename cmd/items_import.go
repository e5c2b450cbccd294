package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pirex.GO/config"
	catalogService "pirex.GO/service/catalog"
)

var (
	importFile  string
	importBatch int
)

var importCmd = &cobra.Command{
	Use:   "items:import",
	Short: "Import items from CSV into the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()

		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := catalogService.ImportItems(db, f, catalogService.ImportOptions{
			Owner:     config.AppConfig.ShopID,
			BatchSize: importBatch,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Println("Warning:", w)
		}
		fmt.Printf("Imported %d of %d rows (%d skipped) in %s\n",
			res.Imported, res.TotalRows, res.Skipped, res.TotalTime)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "items.csv", "CSV file to import")
	importCmd.Flags().IntVarP(&importBatch, "batch", "b", 500, "Upsert batch size")
	rootCmd.AddCommand(importCmd)
}
