package seed

import (
	"database/sql"
	"fmt"
	"github.com/brianvoe/gofakeit/v6"
	"statusdrafter/pkg/constants"
	"statusdrafter/pkg/formatter"
	"statusdrafter/pkg/models"
	"time"
)

type DemoProject struct {
	Name  string
	Roles []string
}

var DemoProjects = []DemoProject{
	{
		Name:  "Android App",
		Roles: []string{"Kotlin Developer", "Android UI/UX", "QA Automator", "Release Manager", "API Integrator"},
	},
	{
		Name:  "Website App",
		Roles: []string{"Frontend React Dev", "Backend Node.js", "DevOps Engineer", "Fullstack Lead", "SEO Specialist"},
	},
	{
		Name:  "Desktop App",
		Roles: []string{"C# Developer", "WPF Designer", "System Architect", "Installer Specialist", "Performance Analyst"},
	},
}

var demoTasks = []string{
	"Debugged crash on login screen",
	"Implemented new dashboard widget",
	"Refactored user authentication module",
	"Optimized database queries for performance",
	"Updated documentation for API endpoints",
	"Fixed responsive layout issues on mobile",
	"Configured CI/CD pipeline",
	"Investigated memory leak in background service",
	"Designed new icons for settings menu",
	"Conducted code review for PR #42",
}

// empty entries weight the draw towards drafts without blockers
var demoBlockers = []string{
	"", "", "",
	"Waiting for API keys",
	"Server downtime",
	"Ambiguous requirements",
	"Dependency conflict",
}

// demoContent writes the short report shape the dashboard summarizes by its
// Task or Highlight line
func demoContent(draftType models.DraftType, task string, blocker string, createdAt time.Time) string {
	date := createdAt.Format(formatter.DateLayout)
	if draftType == models.WeeklyDraft {
		return fmt.Sprintf("Weekly Summary (%s)\nHighlight: %s\n\nAccomplished: Completed core modules for %s.\nNext: Testing phase.", date, task, task)
	}
	content := fmt.Sprintf("Daily Update (%s)\nTask: %s\nStatus: In Progress\n\nDone: %s\n", date, task, task)
	if blocker != "" {
		content += "Blocker: " + blocker
	}
	return content
}

type Summary struct {
	Projects int
	Roles    int
	Drafts   int
}

// DemoData replaces every project, role and draft with the demo data set:
// three projects of five roles each and draftsPerProject drafts per project
// spread over the 60 days before now. The schema must already be migrated.
func DemoData(conn *sql.DB, now time.Time, draftsPerProject int) (Summary, error) {
	summary := Summary{}

	tx, err := conn.Begin()
	if err != nil {
		return summary, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{constants.DraftsTableName, constants.RolesTableName, constants.ProjectsTableName} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return summary, err
		}
		if _, err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table); err != nil {
			return summary, err
		}
	}

	for _, demoProject := range DemoProjects {
		rs, err := tx.Exec(fmt.Sprintf("INSERT INTO %s (%s) VALUES (?)",
			constants.ProjectsTableName, constants.ProjectsNameColumn), demoProject.Name)
		if err != nil {
			return summary, err
		}
		projectID, err := rs.LastInsertId()
		if err != nil {
			return summary, err
		}
		summary.Projects++

		var roleIDs []int64
		for _, roleName := range demoProject.Roles {
			rs, err := tx.Exec(fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
				constants.RolesTableName, constants.RolesProjectIdColumn, constants.RolesNameColumn), projectID, roleName)
			if err != nil {
				return summary, err
			}
			roleID, err := rs.LastInsertId()
			if err != nil {
				return summary, err
			}
			roleIDs = append(roleIDs, roleID)
			summary.Roles++
		}

		for i := 0; i < draftsPerProject; i++ {
			createdAt := now.Add(-time.Duration(gofakeit.Number(0, 59)) * 24 * time.Hour).UTC()
			draftType := models.WeeklyDraft
			if gofakeit.Float64Range(0, 1) > 0.3 {
				draftType = models.DailyDraft
			}
			roleID := roleIDs[gofakeit.Number(0, len(roleIDs)-1)]
			task := gofakeit.RandomString(demoTasks)

			content := demoContent(draftType, task, gofakeit.RandomString(demoBlockers), createdAt)

			_, err := tx.Exec(fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?)",
				constants.DraftsTableName,
				constants.DraftsTypeColumn,
				constants.DraftsContentColumn,
				constants.DraftsProjectIdColumn,
				constants.DraftsRoleIdColumn,
				constants.DraftsCreatedAtColumn,
			), draftType, content, projectID, roleID, createdAt.Format(constants.SqliteTimeLayout))
			if err != nil {
				return summary, err
			}
			summary.Drafts++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, err
	}

	return summary, nil
}
