package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/db"
)

// VersionCmd prints the release and the schema version it migrates to
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of statusdrafter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s (schema v%d)\n", constants.AppName, constants.Version, db.LatestVersion())
	},
}
