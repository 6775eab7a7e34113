package cmd

import (
	"fmt"

	"github.com/brandkit/api/config"
	"github.com/brandkit/api/datastore"
	"github.com/brandkit/api/migrations"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Load()
		if settings.Database.InMemory {
			return fmt.Errorf("nothing to migrate: %s is set", config.DBInMemory)
		}

		db, err := datastore.NewDB(settings.Database.Type, settings.Database.ConnStr())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		return migrations.RunMigrations(db)
	},
}
