package cmd

import (
	"github.com/spf13/cobra"
	"statusdrafter/pkg/constants"
)

var serverURL = ""

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "statusdrafter drafts daily and weekly status updates",
	Long: `
statusdrafter renders daily and weekly status reports, stores them as drafts
tagged with a project and role, and browses the history through a filterable
dashboard.

Run "statusdrafter serve" for the REST API, the other commands talk to it.
`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "base url of the statusdrafter server, defaults to http://Host:Port from the configurations")

	rootCmd.AddCommand(VersionCmd)
	rootCmd.AddCommand(ServeCmd)
	rootCmd.AddCommand(MigrateCmd)
	rootCmd.AddCommand(SeedCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(DraftCmd)
	rootCmd.AddCommand(DashboardCmd)
	rootCmd.AddCommand(ProjectCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
