package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/db"
	"statusdrafter/pkg/repository/draft"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the sqlite schema",
	Long: `
Applies every pending schema migration to DBPath and prints the resulting
version. Running it again on an up to date database changes nothing.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewStatusDrafterConfig().GetConfigurations()
		logger := newLogger(configs)

		store, version, err := openMigratedDb(configs, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		count, countErr := draft.NewDraftRepo(logger, store.GetOpenConnection()).Count()
		if countErr != nil {
			return countErr
		}

		fmt.Printf("%s is at schema version %d of %d, %d drafts stored\n", configs.DBPath, version, db.LatestVersion(), count)
		return nil
	},
}
