package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/recipebox/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.loggerService.Shutdown()

			return database.Migrate(cmd.Context(), &rt.log, rt.cfg)
		},
	}
}
