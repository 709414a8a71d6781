package cmd

import (
	"fmt"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/seed"
)

var draftsPerProject = 50
var skipConfirm = false

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the database content with demo projects, roles and drafts",
	Long: `
Deletes every project, role and draft in DBPath and inserts three demo
projects with five roles each and a history of drafts over the last 60 days.

Usage:

	statusdrafter seed --drafts 20
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewStatusDrafterConfig().GetConfigurations()
		logger := newLogger(configs)

		if !skipConfirm {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("This deletes all data in %s, continue", configs.DBPath),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				fmt.Println("seed cancelled")
				return nil
			}
		}

		store, _, err := openMigratedDb(configs, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		clock, err := newClock(configs)
		if err != nil {
			return err
		}

		summary, err := seed.DemoData(store.GetOpenConnection(), clock.Now(), draftsPerProject)
		if err != nil {
			logger.Error("failed to seed demo data", "error", err.Error())
			return err
		}

		fmt.Printf("seeded %d projects, %d roles and %d drafts\n", summary.Projects, summary.Roles, summary.Drafts)
		return nil
	},
}

func init() {
	SeedCmd.Flags().IntVarP(&draftsPerProject, "drafts", "d", draftsPerProject, "drafts to create per project")
	SeedCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "do not ask for confirmation")
}
