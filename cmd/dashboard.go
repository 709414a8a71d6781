package cmd

import (
	"fmt"
	"github.com/araddon/dateparse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"os"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/dashboard"
	"statusdrafter/pkg/orchestrator"
	"strings"
)

var dashboardQuery = dashboard.DefaultQuery()
var timeframe = string(dashboard.TimeframeAll)
var sortOrder = string(dashboard.SortDesc)
var nowFlag = ""
var loadDraftID int64
var deleteDraftID int64

var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse saved drafts",
	Long: `
Loads the 100 most recent drafts and prints them filtered and sorted.

Usage:

	statusdrafter dashboard --search login --timeframe this_week
	statusdrafter dashboard --timeframe custom --date 2024-05-14
	statusdrafter dashboard --load 12
	statusdrafter dashboard --delete 12
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewStatusDrafterConfig().GetConfigurations()
		logger := newLogger(configs)

		clock, err := newClock(configs)
		if err != nil {
			return err
		}
		if nowFlag != "" {
			now, err := dateparse.ParseIn(nowFlag, clock.Location())
			if err != nil {
				return fmt.Errorf("invalid --now value: %w", err)
			}
			clock.Freeze(now)
		}

		vm := newViewModel(configs, logger, clock)
		vm.Query = dashboardQuery
		vm.Query.Timeframe = dashboard.Timeframe(timeframe)
		vm.Query.Sort = dashboard.SortOrder(sortOrder)

		ctx := cmd.Context()

		if err := vm.RefreshDashboard(ctx); err != nil {
			return err
		}

		if loadDraftID != 0 {
			if err := vm.Dispatch(ctx, dashboard.Action{Kind: dashboard.ActionLoad, DraftID: loadDraftID}); err != nil {
				return err
			}
			fmt.Println(vm.Text)
			return nil
		}

		if deleteDraftID != 0 {
			if err := vm.Dispatch(ctx, dashboard.Action{Kind: dashboard.ActionDelete, DraftID: deleteDraftID}); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Draft %d deleted\n", deleteDraftID)
		}

		renderDashboard(vm)
		return nil
	},
}

func renderDashboard(vm *orchestrator.ViewModel) {
	view := vm.Dashboard()
	if view.Empty() {
		fmt.Println(view.Placeholder)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Date", "Type", "Summary", "Project", "Actions"})
	for _, row := range view.Rows {
		actions := make([]string, 0, len(row.Actions))
		for _, action := range row.Actions {
			actions = append(actions, fmt.Sprintf("--%s %d", action.Kind, action.DraftID))
		}
		t.AppendRow(table.Row{
			row.DraftID,
			row.Date,
			strings.ToUpper(string(row.Type)),
			row.Summary,
			row.ProjectName,
			strings.Join(actions, " "),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(view.Rows), ""})
	t.Render()
}

func init() {
	flags := DashboardCmd.Flags()
	flags.StringVarP(&dashboardQuery.Search, "search", "s", "", "case insensitive text to look for in content, type and project name")
	flags.StringVarP(&dashboardQuery.Type, "type", "t", dashboard.FilterAll, "daily, weekly or all")
	flags.StringVarP(&dashboardQuery.ProjectID, "project", "p", dashboard.FilterAll, "project id or all")
	flags.StringVar(&timeframe, "timeframe", timeframe, "all, this_week, last_week or custom")
	flags.StringVar(&dashboardQuery.Date, "date", "", "YYYY-MM-DD, used by the custom timeframe")
	flags.StringVar(&sortOrder, "sort", sortOrder, "desc or asc by creation time")
	flags.StringVar(&nowFlag, "now", "", "evaluate week windows as if it were this time")
	flags.Int64Var(&loadDraftID, "load", 0, "print the content of a draft")
	flags.Int64Var(&deleteDraftID, "delete", 0, "delete a draft, then list the rest")
}
