package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Imported so migration and seeder init() registration runs.
	_ "github.com/vivekmishra161/AKC-autoparts-1/database/migrations"
	_ "github.com/vivekmishra161/AKC-autoparts-1/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "akc",
	Short: "AKC Auto Parts storefront",
	Long:  "AKC Auto Parts is an e-commerce storefront with a back-office. This CLI serves the app and manages its database.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
