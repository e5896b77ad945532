package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCfg := cfg.Database
			dbCfg.AutoMigrate = false

			db, closeDB, err := openDatabase(dbCfg)
			if err != nil {
				return err
			}
			defer closeDB()

			return db.Migrate(log)
		},
	}
}
