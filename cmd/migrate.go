package main

import (
	"github.com/spf13/cobra"

	"contacts-api/config"
	"contacts-api/internal/repositories"
	"contacts-api/internal/utils"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the contacts table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			utils.InitLogger(cfg.Log.Level, cfg.Log.Format)

			db, err := config.ConnectDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repositories.EnsureSchema(cmd.Context(), db, cfg.Database.Driver); err != nil {
				return err
			}
			utils.LogInfo("Schema ready on %s", cfg.Database.Driver)
			return nil
		},
	}
}
