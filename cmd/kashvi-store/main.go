// Command kashvi-store is the storefront CLI: serve the API, manage the
// database, and run background workers.
//
//	kashvi-store serve             # start the HTTP server
//	kashvi-store migrate           # run pending migrations
//	kashvi-store migrate:rollback
//	kashvi-store migrate:status
//	kashvi-store seed              # seed admin, catalog and content
//	kashvi-store route:list        # list API routes
//	kashvi-store queue:work        # standalone queue worker
//	kashvi-store schedule:run      # standalone scheduler
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs run and
	// register themselves.
	_ "github.com/shashiranjanraj/kashvi-store/database/migrations"
	_ "github.com/shashiranjanraj/kashvi-store/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kashvi-store",
	Short: "Kashvi Gems storefront and back office",
	Long:  "Gemstone e-commerce API: public storefront, customer orders, and the admin back office.",
}

func init() {
	// Server
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)

	// Workers
	rootCmd.AddCommand(queueWorkCmd)
	rootCmd.AddCommand(scheduleRunCmd)
}
