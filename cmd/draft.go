package cmd

import (
	"errors"
	"fmt"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"os"
	"statusdrafter/pkg/config"
	"statusdrafter/pkg/draftime"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/orchestrator"
	"strings"
)

var draftType = string(models.DailyDraft)
var draftFields = models.NewDraftFields()
var draftProjectID int64
var draftRoleID int64
var saveDraft = false
var enhanceDraft = false
var emailDraft = false
var slackDraft = false
var showHistory = false

var DraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Compose a daily or weekly status update",
	Long: `
Renders a status update from flags and prints it. The date defaults to today
for daily updates and to Monday - Friday of this week for weekly ones.

Usage:

	statusdrafter draft --task "Fix login bug" --desc "Patched token refresh" --next "Write tests" --save
	statusdrafter draft --type weekly --task "Shipped v2" --enhance --slack
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewStatusDrafterConfig().GetConfigurations()
		logger := newLogger(configs)

		clock, err := newClock(configs)
		if err != nil {
			return err
		}
		vm := newViewModel(configs, logger, clock)

		if err := vm.SetMode(models.DraftType(draftType)); err != nil {
			return err
		}
		for _, name := range []string{
			models.FieldUserName,
			models.FieldTaskTitle,
			models.FieldProgressStatus,
			models.FieldTaskDesc,
			models.FieldBlockers,
			models.FieldNextSteps,
		} {
			value, _ := draftFields.Get(name)
			if err := vm.SetField(name, value); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("date") {
			if err := vm.SetField(models.FieldDateRange, draftFields.DateRange); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("project") {
			vm.SelectProject(&draftProjectID)
		}
		if cmd.Flags().Changed("role") {
			vm.SelectRole(&draftRoleID)
		}

		ctx := cmd.Context()

		if enhanceDraft {
			err := vm.Enhance(ctx)
			switch {
			case errors.Is(err, orchestrator.ErrNothingToEnhance):
				fmt.Fprintln(os.Stderr, "Please enter some text first")
			case err != nil:
				fmt.Fprintf(os.Stderr, "Enhancement failed, keeping the original text: %v\n", err)
			}
		}

		fmt.Println(vm.Text)

		if emailDraft {
			fmt.Printf("\n%s\n", vm.EmailLink())
		}
		if slackDraft {
			fmt.Printf("\n%s\n", vm.SlackBlock())
		}

		if saveDraft {
			created, err := vm.Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to save draft: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Draft %d saved\n", created.ID)
		}

		if showHistory {
			history, err := vm.History(ctx)
			if err != nil {
				return err
			}
			renderHistory(history, clock)
		}
		return nil
	},
}

func renderHistory(drafts []models.Draft, clock *draftime.DrafterTime) {
	if len(drafts) == 0 {
		fmt.Println("No history found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Type", "Created At"})
	for _, d := range drafts {
		createdAt := clock.GetTime(d.CreatedAt).Format("02/01/2006 15:04")
		t.AppendRow(table.Row{d.ID, strings.ToUpper(string(d.Type)), createdAt})
	}
	t.Render()
}

func init() {
	flags := DraftCmd.Flags()
	flags.StringVarP(&draftType, "type", "t", draftType, "daily or weekly")
	flags.StringVarP(&draftFields.UserName, "name", "n", "", "author name")
	flags.StringVar(&draftFields.DateRange, "date", "", "date or date range shown in the header")
	flags.StringVar(&draftFields.TaskTitle, "task", "", "task title, the key highlight for weekly updates")
	flags.StringVar(&draftFields.ProgressStatus, "status", models.DefaultProgressStatus, "progress status")
	flags.StringVar(&draftFields.TaskDesc, "desc", "", "what was done or is in progress")
	flags.StringVar(&draftFields.Blockers, "blockers", "", "blockers, omitted from daily updates when empty")
	flags.StringVar(&draftFields.NextSteps, "next", "", "next steps")
	flags.Int64Var(&draftProjectID, "project", 0, "project id to tag the saved draft with")
	flags.Int64Var(&draftRoleID, "role", 0, "role id to tag the saved draft with")
	flags.BoolVar(&saveDraft, "save", false, "save the draft on the server")
	flags.BoolVar(&enhanceDraft, "enhance", false, "rewrite the text fields with the AI enhancer before rendering")
	flags.BoolVar(&emailDraft, "email", false, "print a mailto link with the draft as body")
	flags.BoolVar(&slackDraft, "slack", false, "print the draft wrapped for pasting into Slack")
	flags.BoolVar(&showHistory, "history", false, "list the five most recent drafts")
}
